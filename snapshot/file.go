package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	skiplist "github.com/metailurini/skiplist/v2"
	"github.com/metailurini/skiplist/v2/internal/compression"
)

// DumpFile writes a snapshot of m to path. The data goes to a temporary file
// in the same directory which is synced and renamed over path, so readers
// see either the old snapshot or the complete new one. Missing parent
// directories are created.
func DumpFile[K, V any](path string, m *skiplist.Map[K, V], keys Codec[K], values Codec[V], opts ...Option) (n int, err error) {
	cfg := newConfig(opts)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("snapshot: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	cw, err := compression.NewWriter(cfg.compression, tmp)
	if err != nil {
		return 0, fmt.Errorf("snapshot: %w", err)
	}
	if n, err = Dump(cw, m, keys, values); err != nil {
		return n, err
	}
	if err = cw.Close(); err != nil {
		return n, fmt.Errorf("snapshot: finish %s stream: %w", cfg.compression, err)
	}
	if err = tmp.Sync(); err != nil {
		return n, fmt.Errorf("snapshot: sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return n, fmt.Errorf("snapshot: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("snapshot: rename: %w", err)
	}

	cfg.logger.Debug("snapshot written",
		slog.String("path", path),
		slog.Int("entries", n),
		slog.String("compression", cfg.compression.String()))
	return n, nil
}

// LoadFile loads the snapshot at path into m, detecting its compression
// variant. See Load for the handling of malformed lines.
func LoadFile[K, V any](path string, m *skiplist.Map[K, V], keys Codec[K], values Codec[V], opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	rc, ct, err := compression.NewReader(f)
	if err != nil {
		return Result{}, fmt.Errorf("snapshot: %w", err)
	}
	defer rc.Close()

	res, err := Load(rc, m, keys, values, opts...)
	if err != nil {
		return res, err
	}

	cfg.logger.Debug("snapshot loaded",
		slog.String("path", path),
		slog.Int("applied", res.Applied()),
		slog.Int("skipped", len(res.Skipped)),
		slog.String("compression", ct.String()))
	return res, nil
}
