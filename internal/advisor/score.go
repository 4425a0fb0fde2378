package advisor

import (
	"strings"

	"github.com/simstore/build-advisor/internal/models"
)

// Component type names as they appear after catalog normalization.
const (
	TypeCPU         = "CPU"
	TypeGPU         = "GPU"
	TypeRAM         = "RAM"
	TypeStorage     = "STORAGE"
	TypeMotherboard = "MOTHERBOARD"
	TypePSU         = "PSU"
	TypeCase        = "CASE"
	TypeMonitor     = "MONITOR"
)

// Task profiles recognized by the scoring and allocation tables.
const (
	TaskGeneral = "general"
	TaskCPU     = "cpu"
	TaskGPU     = "gpu"
)

// tierRule maps name substrings to a score multiplier. Rules are checked
// top to bottom and the first matching keyword wins, so a name containing
// both "i9" and "i3" boosts as an i9.
type tierRule struct {
	keywords []string
	boost    float64
}

var cpuTiers = []tierRule{
	{keywords: []string{"i9", "ryzen 9"}, boost: 1.5},
	{keywords: []string{"i7", "ryzen 7"}, boost: 1.3},
	{keywords: []string{"i5", "ryzen 5"}, boost: 1.1},
	{keywords: []string{"i3", "ryzen 3"}, boost: 1.0},
	{keywords: []string{"celeron", "atom"}, boost: 0.5},
}

var gpuTiers = []tierRule{
	{keywords: []string{"rtx 4090", "rtx 4080"}, boost: 1.5},
	{keywords: []string{"rtx 4070", "rtx 3070"}, boost: 1.3},
	{keywords: []string{"rtx 3060", "rtx 2060"}, boost: 1.1},
	{keywords: []string{"gtx 1660", "gtx 1650"}, boost: 1.0},
	{keywords: []string{"gt 710", "gt 730"}, boost: 0.5},
}

// modelBoost returns the tier multiplier for a part name. Only CPUs and
// GPUs have tier tables; every other type boosts at 1.0.
func modelBoost(partType, name string) float64 {
	var rules []tierRule
	switch partType {
	case TypeCPU:
		rules = cpuTiers
	case TypeGPU:
		rules = gpuTiers
	default:
		return 1.0
	}

	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.boost
			}
		}
	}
	return 1.0
}

// Score rates a part's suitability for a task profile. Pure and
// deterministic; never negative for non-negative inputs.
func Score(p models.Part, task string) float64 {
	base := p.BenchmarkScore
	boost := modelBoost(p.Type, p.Name)
	threads := float64(atLeastOne(p.Threads))
	cores := float64(atLeastOne(p.Cores))
	vram := float64(atLeastOne(p.VRAM))

	switch task {
	case TaskCPU:
		switch p.Type {
		case TypeCPU:
			return (base + threads*25 + cores*15) * boost
		case TypeGPU:
			return base * 0.3
		case TypeRAM:
			// RAM matters more for CPU-bound workloads
			return base * 1.5
		}
	case TaskGPU:
		switch p.Type {
		case TypeGPU:
			return (base + vram*30) * boost
		case TypeCPU:
			return base * 0.3
		case TypePSU:
			// headroom for power-hungry cards
			return base * 1.2
		}
	case TaskGeneral:
		switch p.Type {
		case TypeCPU:
			return (base + threads*15) * boost
		case TypeGPU:
			return (base + vram*15) * boost
		}
	}

	return base * boost
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
