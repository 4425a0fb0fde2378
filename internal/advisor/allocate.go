package advisor

// CategoryOrder is the fixed iteration order for build selection. Changing
// it changes which category gets first claim on the shared catalog, so it
// is part of the selection contract.
var CategoryOrder = []string{
	TypeCPU,
	TypeGPU,
	TypeRAM,
	TypeStorage,
	TypeMotherboard,
	TypePSU,
	TypeCase,
}

// allocations maps a task profile to per-category budget fractions.
// Each profile's fractions sum to 1.0.
var allocations = map[string]map[string]float64{
	TaskGeneral: {
		TypeCPU:         0.25,
		TypeGPU:         0.30,
		TypeRAM:         0.10,
		TypeStorage:     0.10,
		TypeMotherboard: 0.10,
		TypePSU:         0.08,
		TypeCase:        0.07,
	},
	TaskCPU: {
		TypeCPU:         0.35,
		TypeGPU:         0.25,
		TypeRAM:         0.12,
		TypeStorage:     0.10,
		TypeMotherboard: 0.10,
		TypePSU:         0.05,
		TypeCase:        0.03,
	},
	TaskGPU: {
		TypeCPU:         0.20,
		TypeGPU:         0.40,
		TypeRAM:         0.10,
		TypeStorage:     0.10,
		TypeMotherboard: 0.10,
		TypePSU:         0.07,
		TypeCase:        0.03,
	},
}

// Allocation returns the budget fractions for a task profile. Unrecognized
// profiles fall back to the general table.
func Allocation(task string) map[string]float64 {
	if alloc, ok := allocations[task]; ok {
		return alloc
	}
	return allocations[TaskGeneral]
}
