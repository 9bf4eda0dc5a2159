package catalog

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/peeq/core"
)

// defaultExtraSubdir is the scraper output directory checked in addition
// to the primary source directory.
const defaultExtraSubdir = "rare_rabbit_scraper"

// Diagnostic records one non-fatal failure encountered during a load.
// File-level failures carry Row == 0; row-level failures carry the
// 1-based line number within the file (the header is line 1).
type Diagnostic struct {
	File   string `json:"file"`
	Row    int    `json:"row,omitempty"`
	Reason string `json:"reason"`
}

// Loader discovers vendor CSV exports and parses them into the unified
// product model. Files are parsed concurrently on a worker pool; results
// are merged strictly in discovery order so deduplication stays
// deterministic.
type Loader struct {
	dir      string
	extraSub string
	pool     *ants.Pool
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithExtraSubdir sets the name of the optional subdirectory scanned in
// addition to the primary source directory.
// Default is "rare_rabbit_scraper".
func WithExtraSubdir(name string) LoaderOption {
	return func(l *Loader) error {
		l.extraSub = name
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent file parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) LoaderOption {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLoaderLogger sets a custom logger.
// Default is slog.Default().
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader reading from the given source directory.
func NewLoader(dir string, opts ...LoaderOption) (*Loader, error) {
	if dir == "" {
		return nil, ErrDirRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		dir:      dir,
		extraSub: defaultExtraSubdir,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.pool.Release()
			return nil, err
		}
	}

	return l, nil
}

// Dir returns the primary source directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Close releases the worker pool.
func (l *Loader) Close() error {
	l.pool.Release()
	return nil
}

type fileResult struct {
	products []core.Product
	diags    []Diagnostic
}

// Load discovers, parses, merges and deduplicates all source files.
//
// Load never fails outright: total unavailability of sources yields an
// empty product slice plus diagnostics describing what went wrong. The
// context is accepted for interface symmetry; a started load runs to
// completion.
func (l *Loader) Load(ctx context.Context) ([]core.Product, []Diagnostic) {
	var diags []Diagnostic

	files := l.discover(&diags)
	if len(files) == 0 {
		l.logger.Warn("no product CSV files found", "dir", l.dir)
		return []core.Product{}, diags
	}

	// Parse concurrently, merge in discovery order.
	results := make([]fileResult, len(files))
	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = l.parseFile(path)
		}
		if err := l.pool.Submit(task); err != nil {
			// Pool unavailable, parse on the calling goroutine.
			task()
		}
	}
	wg.Wait()

	seen := make(map[string]bool)
	products := make([]core.Product, 0)
	for i, result := range results {
		diags = append(diags, result.diags...)
		kept := 0
		for _, product := range result.products {
			if product.Id == "" || seen[product.Id] {
				continue
			}
			seen[product.Id] = true
			products = append(products, product)
			kept++
		}
		l.logger.Info("loaded products from file",
			"file", filepath.Base(files[i]),
			"parsed", len(result.products),
			"kept", kept)
	}

	l.logger.Info("catalog loaded",
		"products", len(products),
		"files", len(files),
		"diagnostics", len(diags))
	return products, diags
}

// discover enumerates CSV files in the primary directory and, when it
// exists, the extra subdirectory. Ordering is lexicographic within each
// location, primary location first.
func (l *Loader) discover(diags *[]Diagnostic) []string {
	var files []string

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		*diags = append(*diags, Diagnostic{File: l.dir, Reason: "read dir: " + err.Error()})
	} else {
		files = append(files, csvPaths(l.dir, entries)...)
	}

	if l.extraSub != "" {
		extra := filepath.Join(l.dir, l.extraSub)
		if info, err := os.Stat(extra); err == nil && info.IsDir() {
			if entries, err := os.ReadDir(extra); err == nil {
				files = append(files, csvPaths(extra, entries)...)
			}
		}
	}

	return files
}

// csvPaths filters directory entries down to CSV files. os.ReadDir
// returns entries sorted by filename, which provides the lexicographic
// discovery order.
func csvPaths(dir string, entries []os.DirEntry) []string {
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths
}

// parseFile parses a single CSV file into products. All failures are
// contained: a malformed file is skipped with a file-level diagnostic, a
// bad row is dropped with a row-level diagnostic.
func (l *Loader) parseFile(path string) fileResult {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return fileResult{diags: []Diagnostic{{File: name, Reason: "open: " + err.Error()}}}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // vendor exports have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return fileResult{diags: []Diagnostic{{File: name, Reason: "parse: " + err.Error()}}}
	}
	if len(rows) == 0 {
		return fileResult{diags: []Diagnostic{{File: name, Reason: "empty file"}}}
	}

	header := rows[0]
	schema := detectSchema(header)
	if schema == SchemaUnknown {
		return fileResult{diags: []Diagnostic{{File: name, Reason: ErrUnknownSchema.Error()}}}
	}
	l.logger.Debug("detected schema", "file", name, "schema", schema.String())

	var result fileResult
	for i, row := range rows[1:] {
		rec := make(record, len(header))
		for j, field := range header {
			if j < len(row) {
				if v := strings.TrimSpace(row[j]); v != "" {
					rec[strings.ToLower(strings.TrimSpace(field))] = v
				}
			}
		}

		product, err := mapRecord(schema, rec, name)
		if err != nil {
			result.diags = append(result.diags, Diagnostic{
				File:   name,
				Row:    i + 2, // +1 for the header, +1 for 1-based lines
				Reason: err.Error(),
			})
			continue
		}
		result.products = append(result.products, product)
	}

	return result
}
