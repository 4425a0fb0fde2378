package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/simstore/build-advisor/internal/models"
)

// Store holds the in-memory part catalog. It is populated once at startup
// and read-only afterwards; accessors hand out copies so callers can never
// mutate the loaded snapshot.
type Store struct {
	mu    sync.RWMutex
	parts []models.Part
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{}
}

// LoadFromDir loads all JSON and YAML part snapshots from a directory.
// Files that fail to parse are skipped with a warning; catalog order
// follows file order, then record order within each file.
func (s *Store) LoadFromDir(dir string) error {
	slog.Info("loading part catalog from directory", "dir", dir)

	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return fmt.Errorf("no catalog files found in %s", dir)
	}

	loaded := 0
	for _, file := range files {
		n, err := s.LoadFromFile(file)
		if err != nil {
			slog.Warn("failed to load catalog file", "file", file, "error", err)
			continue
		}
		loaded += n
	}

	slog.Info("part catalog loaded", "parts", loaded, "files", len(files))
	return nil
}

// LoadFromFile loads a single part snapshot file and returns the number of
// parts added.
func (s *Store) LoadFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	var records []partRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &records); err != nil {
			return 0, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return 0, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return 0, fmt.Errorf("unsupported catalog format %q", ext)
	}

	added := 0
	s.mu.Lock()
	for i, rec := range records {
		part, err := rec.normalize()
		if err != nil {
			slog.Warn("skipping catalog record", "file", path, "index", i, "error", err)
			continue
		}
		s.parts = append(s.parts, part)
		added++
	}
	s.mu.Unlock()

	return added, nil
}

// Add programmatically appends parts to the catalog. Types are normalized
// the same way file loading normalizes them.
func (s *Store) Add(parts ...models.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range parts {
		p.Type = strings.ToUpper(strings.TrimSpace(p.Type))
		s.parts = append(s.parts, p)
	}
}

// Parts returns a copy of the full catalog in load order.
func (s *Store) Parts() []models.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Part, len(s.parts))
	copy(result, s.parts)
	return result
}

// PartsByType returns all parts of a type (case-insensitive), in load order.
func (s *Store) PartsByType(partType string) []models.Part {
	partType = strings.ToUpper(partType)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Part
	for _, p := range s.parts {
		if p.Type == partType {
			result = append(result, p)
		}
	}
	return result
}

// Len returns the number of loaded parts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parts)
}

// --- snapshot file structs ---

// partRecord is the raw on-disk shape of one part. Source data is messy:
// prices and scores arrive as numbers or strings, ids as either, so the
// numeric fields stay loose here and are normalized below.
type partRecord struct {
	ID             any    `json:"id" yaml:"id"`
	Type           string `json:"type" yaml:"type"`
	Name           string `json:"name" yaml:"name"`
	Price          any    `json:"price" yaml:"price"`
	BenchmarkScore any    `json:"benchmark_score" yaml:"benchmark_score"`
	Threads        any    `json:"threads" yaml:"threads"`
	Cores          any    `json:"cores" yaml:"cores"`
	VRAM           any    `json:"vram" yaml:"vram"`
	Resolution     string `json:"resolution" yaml:"resolution"`
}

func (r partRecord) normalize() (models.Part, error) {
	if strings.TrimSpace(r.Type) == "" {
		return models.Part{}, fmt.Errorf("part type is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return models.Part{}, fmt.Errorf("part name is required")
	}

	return models.Part{
		ID:             asString(r.ID),
		Type:           strings.ToUpper(strings.TrimSpace(r.Type)),
		Name:           r.Name,
		Price:          asFloat(r.Price, 0),
		BenchmarkScore: asFloat(r.BenchmarkScore, 0),
		Threads:        asPositiveInt(r.Threads, 1),
		Cores:          asPositiveInt(r.Cores, 1),
		VRAM:           asPositiveInt(r.VRAM, 1),
		Resolution:     r.Resolution,
	}, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asFloat(v any, fallback float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return fallback
}

func asPositiveInt(v any, fallback int) int {
	switch t := v.(type) {
	case int:
		if t > 0 {
			return t
		}
	case float64:
		if t > 0 {
			return int(t)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
