// Package snapshot dumps a skiplist.Map to, and loads it from, a flat text
// format: one "key:value" line per entry in ascending key order, with no
// header, count, checksum or escaping. Keys and values are converted to text
// by a Codec; their text must not contain ':' or a newline.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	skiplist "github.com/metailurini/skiplist/v2"
)

const delimiter = ':'

// Result summarises a Load.
type Result struct {
	// Inserted and Updated count the parsed lines applied with Put.
	Inserted int
	Updated  int
	// Skipped lists every malformed line in file order.
	Skipped []*MalformedRecord
}

// Applied returns the number of lines applied to the map.
func (r Result) Applied() int {
	return r.Inserted + r.Updated
}

// Err joins the skipped-line diagnostics, or returns nil if none.
func (r Result) Err() error {
	errs := make([]error, len(r.Skipped))
	for i, s := range r.Skipped {
		errs[i] = s
	}
	return errors.Join(errs...)
}

// Dump writes every entry of m in ascending key order and returns the
// number of entries written. The map lock is held for the whole walk, so the
// output is the level-0 chain at one instant.
func Dump[K, V any](w io.Writer, m *skiplist.Map[K, V], keys Codec[K], values Codec[V]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	err := m.Walk(func(k K, v V) error {
		if _, err := bw.WriteString(keys.Encode(k)); err != nil {
			return err
		}
		if err := bw.WriteByte(delimiter); err != nil {
			return err
		}
		if _, err := bw.WriteString(values.Encode(v)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("snapshot: write record %d: %w", n+1, err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("snapshot: flush: %w", err)
	}
	return n, nil
}

// Load reads "key:value" lines from r and applies each with m.Put, so a
// later line for the same key overwrites an earlier one. Blank lines are
// ignored. A line without a delimiter, with an empty key or value, or with
// a field its codec rejects is skipped and reported in Result.Skipped; it
// does not stop the load. Only read errors are returned as err.
func Load[K, V any](r io.Reader, m *skiplist.Map[K, V], keys Codec[K], values Codec[V], opts ...Option) (Result, error) {
	cfg := newConfig(opts)
	br := bufio.NewReader(r)

	var res Result
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("snapshot: read line %d: %w", lineNo, err)
		}
		if line != "" {
			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if text != "" {
				if bad := apply(m, keys, values, lineNo, text, &res); bad != nil {
					res.Skipped = append(res.Skipped, bad)
					cfg.logger.Warn("skipping malformed snapshot record",
						slog.Int("line", bad.Line),
						slog.String("text", bad.Text),
						slog.String("reason", bad.Reason.Error()))
				}
			}
		}
		if err != nil {
			break
		}
	}
	return res, nil
}

func apply[K, V any](m *skiplist.Map[K, V], keys Codec[K], values Codec[V], lineNo int, text string, res *Result) *MalformedRecord {
	rawKey, rawValue, reason := splitRecord(text)
	if reason != nil {
		return &MalformedRecord{Line: lineNo, Text: text, Reason: reason}
	}

	key, err := keys.Decode(rawKey)
	if err != nil {
		return &MalformedRecord{Line: lineNo, Text: text, Reason: fmt.Errorf("decode key: %w", err)}
	}
	value, err := values.Decode(rawValue)
	if err != nil {
		return &MalformedRecord{Line: lineNo, Text: text, Reason: fmt.Errorf("decode value: %w", err)}
	}

	if _, replaced := m.Put(key, value); replaced {
		res.Updated++
	} else {
		res.Inserted++
	}
	return nil
}

// splitRecord splits text at its first delimiter.
func splitRecord(text string) (key, value string, reason error) {
	key, value, ok := strings.Cut(text, string(delimiter))
	switch {
	case !ok:
		return "", "", ErrMissingDelimiter
	case key == "":
		return "", "", ErrEmptyKey
	case value == "":
		return "", "", ErrEmptyValue
	}
	return key, value, nil
}
