package models

// Part is one catalog entry. Parts are immutable once loaded; derived
// scores are computed fresh per request and never stored on the part.
type Part struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"` // normalized to uppercase (CPU, GPU, RAM, ...)
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	BenchmarkScore float64 `json:"benchmark_score"`
	Threads        int     `json:"threads,omitempty"`
	Cores          int     `json:"cores,omitempty"`
	VRAM           int     `json:"vram,omitempty"`
	Resolution     string  `json:"resolution,omitempty"` // monitors only
}

// BuildEntry is one selected component within a generated build.
// Capacity is parsed gigabytes for STORAGE parts, null otherwise.
type BuildEntry struct {
	Type     string  `json:"type"`
	Model    string  `json:"model"`
	Price    float64 `json:"price"`
	Score    float64 `json:"score"`
	Capacity *int    `json:"capacity"`
}

// Build is a generated component set within a budget. Built fresh per
// request, never persisted.
type Build struct {
	Task       string       `json:"task"`
	Budget     float64      `json:"budget"`
	Entries    []BuildEntry `json:"build"`
	TotalPrice float64      `json:"totalPrice"`
}

// PartSelection is a caller-chosen CPU or GPU in a bottleneck request.
type PartSelection struct {
	Name           string  `json:"name"`
	BenchmarkScore float64 `json:"benchmark_score"`
}

// MonitorSelection is the optional monitor in a bottleneck request.
type MonitorSelection struct {
	Name       string `json:"name"`
	Resolution string `json:"resolution"`
}

// BottleneckResult is the estimated CPU/GPU imbalance for a workload.
// Bottleneck is a percentage formatted to two decimal places.
type BottleneckResult struct {
	Bottleneck string `json:"bottleneck"`
	Suggestion string `json:"suggestion"`
}
