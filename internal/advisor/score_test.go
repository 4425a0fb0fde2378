package advisor

import (
	"math"
	"testing"

	"github.com/simstore/build-advisor/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreTaskBranches(t *testing.T) {
	tests := []struct {
		name string
		part models.Part
		task string
		want float64
	}{
		{
			name: "cpu task boosts cpu by threads and cores",
			part: models.Part{Type: TypeCPU, Name: "Intel Core i5-12400", BenchmarkScore: 100, Threads: 12, Cores: 6},
			task: TaskCPU,
			// (100 + 12*25 + 6*15) * 1.1
			want: (100 + 300 + 90) * 1.1,
		},
		{
			name: "cpu task discounts gpu",
			part: models.Part{Type: TypeGPU, Name: "RTX 3060", BenchmarkScore: 150, VRAM: 12},
			task: TaskCPU,
			want: 150 * 0.3,
		},
		{
			name: "cpu task favors ram",
			part: models.Part{Type: TypeRAM, Name: "Corsair Vengeance 16GB", BenchmarkScore: 80},
			task: TaskCPU,
			want: 80 * 1.5,
		},
		{
			name: "gpu task boosts gpu by vram",
			part: models.Part{Type: TypeGPU, Name: "NVIDIA RTX 3070", BenchmarkScore: 200, VRAM: 8},
			task: TaskGPU,
			// (200 + 8*30) * 1.3
			want: (200 + 240) * 1.3,
		},
		{
			name: "gpu task discounts cpu",
			part: models.Part{Type: TypeCPU, Name: "Intel Core i9-13900K", BenchmarkScore: 300, Threads: 32},
			task: TaskGPU,
			want: 300 * 0.3,
		},
		{
			name: "gpu task favors psu",
			part: models.Part{Type: TypePSU, Name: "Corsair RM750", BenchmarkScore: 50},
			task: TaskGPU,
			want: 50 * 1.2,
		},
		{
			name: "general task cpu uses threads only",
			part: models.Part{Type: TypeCPU, Name: "Intel Core i5", BenchmarkScore: 100, Threads: 6, Cores: 6},
			task: TaskGeneral,
			// (100 + 6*15) * 1.1
			want: 190 * 1.1,
		},
		{
			name: "general task gpu uses vram",
			part: models.Part{Type: TypeGPU, Name: "RTX 3060", BenchmarkScore: 150, VRAM: 6},
			task: TaskGeneral,
			// (150 + 6*15) * 1.1
			want: 240 * 1.1,
		},
		{
			name: "general task other types fall back to base times boost",
			part: models.Part{Type: TypeMotherboard, Name: "MSI B660M-A", BenchmarkScore: 40},
			task: TaskGeneral,
			want: 40,
		},
		{
			name: "unrecognized task falls back for every type",
			part: models.Part{Type: TypeCPU, Name: "AMD Ryzen 7 5800X", BenchmarkScore: 100, Threads: 16},
			task: "rendering",
			want: 100 * 1.3,
		},
		{
			name: "missing threads and cores default to one",
			part: models.Part{Type: TypeCPU, Name: "mystery chip", BenchmarkScore: 100},
			task: TaskCPU,
			// (100 + 1*25 + 1*15) * 1.0
			want: 140,
		},
		{
			name: "missing benchmark scores zero",
			part: models.Part{Type: TypeCase, Name: "NZXT H510"},
			task: TaskGeneral,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.part, tt.task)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelBoostTiers(t *testing.T) {
	tests := []struct {
		partType string
		name     string
		want     float64
	}{
		{TypeCPU, "Intel Core i9-13900K", 1.5},
		{TypeCPU, "AMD Ryzen 9 7950X", 1.5},
		{TypeCPU, "Intel Core i7-12700K", 1.3},
		{TypeCPU, "AMD Ryzen 5 5600", 1.1},
		{TypeCPU, "Intel Core i3-12100", 1.0},
		{TypeCPU, "Intel Celeron G5905", 0.5},
		{TypeCPU, "Unknown CPU 3000", 1.0},
		{TypeGPU, "NVIDIA RTX 4090", 1.5},
		{TypeGPU, "NVIDIA RTX 3070 Ti", 1.3},
		{TypeGPU, "NVIDIA RTX 2060 Super", 1.1},
		{TypeGPU, "NVIDIA GTX 1660 Super", 1.0},
		{TypeGPU, "NVIDIA GT 710", 0.5},
		{TypeGPU, "Radeon RX 6600", 1.0},
		{TypeRAM, "Kingston Fury i9 Edition", 1.0}, // tiers apply to CPU/GPU only
	}

	for _, tt := range tests {
		if got := modelBoost(tt.partType, tt.name); !almostEqual(got, tt.want) {
			t.Errorf("modelBoost(%s, %q) = %v, want %v", tt.partType, tt.name, got, tt.want)
		}
	}
}

// A name matching several tiers must resolve to the one checked first.
func TestModelBoostFirstMatchWins(t *testing.T) {
	if got := modelBoost(TypeCPU, "i9 bundle with spare i3"); !almostEqual(got, 1.5) {
		t.Errorf("expected i9 tier 1.5, got %v", got)
	}
	if got := modelBoost(TypeGPU, "RTX 3060 upgraded from GT 710"); !almostEqual(got, 1.1) {
		t.Errorf("expected rtx 3060 tier 1.1, got %v", got)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	parts := []models.Part{
		{Type: TypeCPU, Name: "Intel Celeron", BenchmarkScore: 0},
		{Type: TypeGPU, Name: "GT 710", BenchmarkScore: 0.5, VRAM: 1},
		{Type: TypeRAM, Name: "no-name stick"},
		{Type: TypeStorage, Name: "WD Black 1TB", BenchmarkScore: 12},
	}
	tasks := []string{TaskCPU, TaskGPU, TaskGeneral, "weird"}

	for _, p := range parts {
		for _, task := range tasks {
			if got := Score(p, task); got < 0 {
				t.Errorf("Score(%q, %q) = %v, want >= 0", p.Name, task, got)
			}
		}
	}
}
