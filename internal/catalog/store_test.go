package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadFromDirMixedFormats(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "parts.json", `[
		{"id": 1, "type": "cpu", "name": "Intel Core i5-12400", "price": 200, "benchmark_score": 100, "threads": 12, "cores": 6},
		{"id": "g-1", "type": "GPU", "name": "RTX 3060", "price": "299.99", "benchmark_score": "150", "vram": 12},
		{"id": 3, "type": "storage", "name": "Samsung 970 EVO 500GB", "price": 60, "benchmark_score": 40}
	]`)

	writeFile(t, dir, "monitors.yaml", `
- id: m-1
  type: monitor
  name: Dell S2721QS
  resolution: 3840x2160
- id: m-2
  type: monitor
  name: AOC 24G2
  resolution: 1920x1080
`)

	store := NewStore()
	if err := store.LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}

	if store.Len() != 5 {
		t.Fatalf("expected 5 parts, got %d", store.Len())
	}

	parts := store.Parts()

	cpu := parts[0]
	if cpu.Type != "CPU" {
		t.Errorf("type should be normalized to uppercase, got %q", cpu.Type)
	}
	if cpu.ID != "1" {
		t.Errorf("numeric id should become string, got %q", cpu.ID)
	}
	if cpu.Threads != 12 || cpu.Cores != 6 {
		t.Errorf("unexpected cpu threads/cores: %d/%d", cpu.Threads, cpu.Cores)
	}

	gpu := parts[1]
	if gpu.Price != 299.99 {
		t.Errorf("string price should parse, got %v", gpu.Price)
	}
	if gpu.BenchmarkScore != 150 {
		t.Errorf("string benchmark should parse, got %v", gpu.BenchmarkScore)
	}
	if gpu.Threads != 1 {
		t.Errorf("absent threads should default to 1, got %d", gpu.Threads)
	}

	monitors := store.PartsByType("monitor")
	if len(monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(monitors))
	}
	if monitors[0].Resolution != "3840x2160" {
		t.Errorf("unexpected monitor resolution %q", monitors[0].Resolution)
	}
}

func TestLoadFromFileNormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "parts.json", `[
		{"type": "CPU", "name": "broken price", "price": "not-a-number", "benchmark_score": null},
		{"type": "GPU", "name": "negative vram", "price": 100, "benchmark_score": 10, "vram": -4},
		{"type": "", "name": "typeless"},
		{"type": "RAM", "name": ""}
	]`)

	store := NewStore()
	n, err := store.LoadFromFile(filepath.Join(dir, "parts.json"))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	// Records missing type or name are dropped, bad values are defaulted.
	if n != 2 {
		t.Fatalf("expected 2 parts loaded, got %d", n)
	}

	parts := store.Parts()
	if parts[0].Price != 0 || parts[0].BenchmarkScore != 0 {
		t.Errorf("unparseable numerics should default to 0: %+v", parts[0])
	}
	if parts[1].VRAM != 1 {
		t.Errorf("non-positive vram should default to 1, got %d", parts[1].VRAM)
	}
}

func TestLoadFromDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{not json`)
	writeFile(t, dir, "good.json", `[{"type": "CASE", "name": "NZXT H510", "price": 90}]`)

	store := NewStore()
	if err := store.LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("expected the broken file to be skipped, got %d parts", store.Len())
	}
}

func TestLoadFromDirEmpty(t *testing.T) {
	store := NewStore()
	if err := store.LoadFromDir(t.TempDir()); err == nil {
		t.Error("expected an error for a directory with no catalog files")
	}
}

func TestPartsReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "parts.json", `[{"type": "CPU", "name": "Intel i5", "price": 200}]`)

	store := NewStore()
	if err := store.LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}

	parts := store.Parts()
	parts[0].Name = "mutated"

	if store.Parts()[0].Name != "Intel i5" {
		t.Error("mutating the returned slice must not affect the store")
	}
}
