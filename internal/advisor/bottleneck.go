package advisor

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/simstore/build-advisor/internal/models"
)

// ErrSelectionRequired reports a bottleneck request missing its CPU or GPU.
var ErrSelectionRequired = errors.New("CPU and GPU must be selected")

// DefaultResolution is assumed when no monitor is selected.
const DefaultResolution = "1920x1080"

// adjustmentRule scales the raw imbalance for a workload. Rules are
// checked top to bottom and the first match wins; rules never combine.
// An empty resolutions list matches any resolution.
type adjustmentRule struct {
	taskType    string
	resolutions []string
	factor      float64
}

var adjustments = []adjustmentRule{
	{taskType: "Gaming", resolutions: []string{"3840", "4K"}, factor: 0.8},
	{taskType: "Gaming", resolutions: []string{"1920"}, factor: 1.2},
	{taskType: "CPU-Intensive", factor: 1.5},
	{taskType: "GPU-Intensive", factor: 0.7},
}

func adjustmentFactor(taskType, resolution string) float64 {
	for _, rule := range adjustments {
		if rule.taskType != taskType {
			continue
		}
		if len(rule.resolutions) == 0 {
			return rule.factor
		}
		for _, sub := range rule.resolutions {
			if strings.Contains(resolution, sub) {
				return rule.factor
			}
		}
	}
	return 1.0
}

// EstimateBottleneck computes the percentage imbalance between a chosen
// CPU and GPU, adjusted for workload and monitor resolution, plus an
// upgrade suggestion. Fully deterministic given its inputs.
func EstimateBottleneck(cpu, gpu *models.PartSelection, monitor *models.MonitorSelection, taskType string) (*models.BottleneckResult, error) {
	if cpu == nil || gpu == nil {
		return nil, ErrSelectionRequired
	}

	resolution := DefaultResolution
	if monitor != nil && monitor.Resolution != "" {
		resolution = monitor.Resolution
	}

	cpuScore := cpu.BenchmarkScore
	gpuScore := gpu.BenchmarkScore

	// Two zero scores carry no signal; report a balanced build rather
	// than dividing by zero.
	var pct float64
	if max := math.Max(cpuScore, gpuScore); max > 0 {
		pct = math.Abs(cpuScore-gpuScore) / max * 100
	}

	pct *= adjustmentFactor(taskType, resolution)

	suggestion := "Ideal build!"
	switch {
	case pct > 20 && cpuScore > gpuScore:
		suggestion = "GPU upgrade suggested"
	case pct > 20:
		suggestion = "CPU upgrade suggested"
	case pct > 10:
		suggestion = "Minor imbalance. Still acceptable."
	}

	return &models.BottleneckResult{
		Bottleneck: strconv.FormatFloat(pct, 'f', 2, 64),
		Suggestion: suggestion,
	}, nil
}
