// Package main provides sklctl, a tool for inspecting and editing skip list
// snapshot files.
//
// Usage:
//
//	sklctl --file=<path> --command=<command> [options]
//
// Commands:
//
//	scan         Print every entry in key order
//	get          Print the value stored under --key
//	put          Store --value under --key and rewrite the snapshot
//	remove       Delete --key and rewrite the snapshot
//	levels       Show the keys linked at every level
//	stats        Show size and level statistics
//	verify       Check the structural invariants after loading
//	fingerprint  Print the XXH3 fingerprint of the snapshot contents
//
// Keys and values are handled as strings and ordered byte-wise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	skiplist "github.com/metailurini/skiplist/v2"
	"github.com/metailurini/skiplist/v2/snapshot"
)

// maxKeysPerLevel bounds the keys printed per row of the levels table.
const maxKeysPerLevel = 16

var errNotFound = errors.New("key not found")

type options struct {
	file        string
	command     string
	key         string
	value       string
	maxLevel    int
	seed        uint64
	compression string
	verbose     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sklctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.file, "file", "store/dumpFile", "Path to the snapshot file")
	fs.StringVar(&opts.command, "command", "scan", "Command: scan, get, put, remove, levels, stats, verify, fingerprint")
	fs.StringVar(&opts.key, "key", "", "Key for get, put and remove")
	fs.StringVar(&opts.value, "value", "", "Value for put")
	fs.IntVar(&opts.maxLevel, "max_level", skiplist.DefaultMaxLevel, "Highest level index a node may occupy")
	fs.Uint64Var(&opts.seed, "seed", 0, "Level generator seed (0 = time based)")
	fs.StringVar(&opts.compression, "compression", "none", "Compression for rewritten snapshots: none, snappy, lz4, zstd")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose)

	ct, err := snapshot.ParseCompression(opts.compression)
	if err != nil {
		return err
	}

	m, err := skiplist.NewOrdered[string, string](
		skiplist.WithMaxLevel(opts.maxLevel),
		skiplist.WithSeed(opts.seed),
		skiplist.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := load(m, opts.file, logger); err != nil {
		return err
	}

	switch opts.command {
	case "scan":
		return cmdScan(m, stdout)
	case "get":
		return cmdGet(m, opts, stdout)
	case "put":
		return cmdPut(m, opts, ct, stdout, logger)
	case "remove":
		return cmdRemove(m, opts, ct, stdout, logger)
	case "levels":
		return cmdLevels(m, stdout)
	case "stats":
		return cmdStats(m, stdout)
	case "verify":
		return cmdVerify(m, stdout)
	case "fingerprint":
		return cmdFingerprint(m, stdout)
	default:
		return fmt.Errorf("unknown command %q", opts.command)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slogcolor.NewHandler(w, &slogcolor.Options{
		Level:       level,
		TimeFormat:  "15:04:05.000",
		SrcFileMode: slogcolor.ShortFile,
		MsgPrefix:   color.HiWhiteString("|"),
		MsgColor:    color.New(color.FgHiWhite),
	}))
}

// load reads the snapshot into m. A missing file is an empty map.
func load(m *skiplist.Map[string, string], path string, logger *slog.Logger) error {
	res, err := snapshot.LoadFile(path, m, snapshot.String, snapshot.String, snapshot.WithLogger(logger))
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no snapshot, starting empty", slog.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}
	if len(res.Skipped) > 0 {
		logger.Warn("snapshot contained malformed records", slog.Int("skipped", len(res.Skipped)))
	}
	return nil
}

func save(m *skiplist.Map[string, string], opts options, ct snapshot.Compression, logger *slog.Logger) error {
	_, err := snapshot.DumpFile(opts.file, m, snapshot.String, snapshot.String,
		snapshot.WithCompression(ct), snapshot.WithLogger(logger))
	return err
}

func requireKey(opts options) error {
	if opts.key == "" {
		return errors.New("--key is required")
	}
	if strings.ContainsAny(opts.key, ":\n") {
		return fmt.Errorf("key %q must not contain ':' or a newline", opts.key)
	}
	return nil
}

func cmdScan(m *skiplist.Map[string, string], w io.Writer) error {
	table := newTable(w, "Key", "Value")
	for k, v := range m.All() {
		table.Append([]string{k, v})
	}
	table.SetFooter([]string{"Entries", strconv.Itoa(m.Len())})
	table.Render()
	return nil
}

func cmdGet(m *skiplist.Map[string, string], opts options, w io.Writer) error {
	if err := requireKey(opts); err != nil {
		return err
	}
	v, ok := m.Get(opts.key)
	if !ok {
		return fmt.Errorf("%w: %q", errNotFound, opts.key)
	}
	fmt.Fprintln(w, v)
	return nil
}

func cmdPut(m *skiplist.Map[string, string], opts options, ct snapshot.Compression, w io.Writer, logger *slog.Logger) error {
	if err := requireKey(opts); err != nil {
		return err
	}
	if opts.value == "" || strings.ContainsAny(opts.value, ":\n") {
		return fmt.Errorf("value %q must be non-empty and must not contain ':' or a newline", opts.value)
	}

	old, replaced := m.Put(opts.key, opts.value)
	if replaced {
		fmt.Fprintf(w, "updated %s (was %s)\n", opts.key, old)
	} else {
		fmt.Fprintf(w, "inserted %s\n", opts.key)
	}
	return save(m, opts, ct, logger)
}

func cmdRemove(m *skiplist.Map[string, string], opts options, ct snapshot.Compression, w io.Writer, logger *slog.Logger) error {
	if err := requireKey(opts); err != nil {
		return err
	}
	if _, ok := m.Remove(opts.key); !ok {
		return fmt.Errorf("%w: %q", errNotFound, opts.key)
	}
	fmt.Fprintf(w, "removed %s\n", opts.key)
	return save(m, opts, ct, logger)
}

func cmdLevels(m *skiplist.Map[string, string], w io.Writer) error {
	table := newTable(w, "Level", "Nodes", "Keys")
	levels := m.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		keys := levels[i]
		shown := keys
		if len(shown) > maxKeysPerLevel {
			shown = shown[:maxKeysPerLevel]
		}
		list := strings.Join(shown, " ")
		if len(keys) > len(shown) {
			list += " ..."
		}
		table.Append([]string{strconv.Itoa(i), strconv.Itoa(len(keys)), list})
	}
	table.Render()
	return nil
}

func cmdStats(m *skiplist.Map[string, string], w io.Writer) error {
	s := m.Stats()
	table := newTable(w, "Metric", "Value")
	table.AppendBulk([][]string{
		{"entries", strconv.Itoa(s.Len)},
		{"top level", strconv.Itoa(s.Level)},
		{"max level", strconv.Itoa(s.MaxLevel)},
		{"inserts", strconv.FormatUint(s.Inserts, 10)},
		{"updates", strconv.FormatUint(s.Updates, 10)},
		{"removes", strconv.FormatUint(s.Removes, 10)},
		{"misses", strconv.FormatUint(s.Misses, 10)},
	})
	table.Render()
	return nil
}

func cmdVerify(m *skiplist.Map[string, string], w io.Writer) error {
	if err := m.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(w, "OK: %d entries, top level %d\n", m.Len(), m.Level())
	return nil
}

func cmdFingerprint(m *skiplist.Map[string, string], w io.Writer) error {
	fp, err := snapshot.Fingerprint(m, snapshot.String, snapshot.String)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%016x\n", fp)
	return nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}
