package advisor

import (
	"math"
	"testing"
)

func TestAllocationFractionsSumToOne(t *testing.T) {
	for _, task := range []string{TaskGeneral, TaskCPU, TaskGPU} {
		alloc := Allocation(task)

		if len(alloc) != len(CategoryOrder) {
			t.Errorf("task %q: expected %d categories, got %d", task, len(CategoryOrder), len(alloc))
		}

		var sum float64
		for _, cat := range CategoryOrder {
			fraction, ok := alloc[cat]
			if !ok {
				t.Errorf("task %q: missing category %s", task, cat)
			}
			if fraction <= 0 {
				t.Errorf("task %q: category %s has non-positive fraction %v", task, cat, fraction)
			}
			sum += fraction
		}

		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("task %q: fractions sum to %v, want 1.0", task, sum)
		}
	}
}

func TestAllocationKnownConstants(t *testing.T) {
	general := Allocation(TaskGeneral)
	if general[TypeCPU] != 0.25 || general[TypeGPU] != 0.30 {
		t.Errorf("general allocation changed: CPU=%v GPU=%v", general[TypeCPU], general[TypeGPU])
	}

	cpu := Allocation(TaskCPU)
	if cpu[TypeCPU] != 0.35 || cpu[TypeCase] != 0.03 {
		t.Errorf("cpu allocation changed: CPU=%v CASE=%v", cpu[TypeCPU], cpu[TypeCase])
	}

	gpu := Allocation(TaskGPU)
	if gpu[TypeGPU] != 0.40 || gpu[TypePSU] != 0.07 {
		t.Errorf("gpu allocation changed: GPU=%v PSU=%v", gpu[TypeGPU], gpu[TypePSU])
	}
}

func TestAllocationUnknownTaskFallsBackToGeneral(t *testing.T) {
	unknown := Allocation("mining")
	general := Allocation(TaskGeneral)

	for _, cat := range CategoryOrder {
		if unknown[cat] != general[cat] {
			t.Errorf("category %s: got %v, want general %v", cat, unknown[cat], general[cat])
		}
	}
}
