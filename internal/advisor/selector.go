package advisor

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/simstore/build-advisor/internal/models"
)

// ErrInvalidInput reports a missing task or an unusable budget.
var ErrInvalidInput = errors.New("missing or invalid task/budget")

// NoComponentsError reports that no category could be filled within the
// requested budget. It carries the budget for user feedback.
type NoComponentsError struct {
	Budget float64
}

func (e *NoComponentsError) Error() string {
	return fmt.Sprintf("no components found within budget %.2f", e.Budget)
}

type scoredPart struct {
	part  models.Part
	score float64
}

// SelectBuild picks the top-scoring affordable part per category and
// aggregates them into a build. Selection is greedy and per-category
// independent: leftover budget from one category is never reallocated to
// another. Categories with no affordable candidate are skipped silently.
//
// The function is pure over the catalog snapshot; identical inputs yield
// identical builds.
func SelectBuild(parts []models.Part, task string, budget float64) (*models.Build, error) {
	if task == "" || budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil, ErrInvalidInput
	}

	// Group by normalized type, dropping entries without a usable price.
	// Catalog order is preserved within each group so equal scores resolve
	// to the earlier entry.
	grouped := make(map[string][]scoredPart)
	for _, p := range parts {
		if p.Price <= 0 {
			continue
		}
		p.Type = strings.ToUpper(p.Type)
		grouped[p.Type] = append(grouped[p.Type], scoredPart{part: p, score: Score(p, task)})
	}

	alloc := Allocation(task)
	build := &models.Build{Task: task, Budget: budget}

	for _, category := range CategoryOrder {
		categoryBudget := budget * alloc[category]

		var candidates []scoredPart
		for _, sp := range grouped[category] {
			if sp.part.Price <= categoryBudget {
				candidates = append(candidates, sp)
			}
		}

		if len(candidates) == 0 {
			slog.Debug("no components fit category budget",
				"category", category,
				"category_budget", categoryBudget,
			)
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		best := candidates[0]
		entry := models.BuildEntry{
			Type:  best.part.Type,
			Model: best.part.Name,
			Price: best.part.Price,
			Score: best.score,
		}
		if category == TypeStorage {
			if gb, ok := StorageCapacity(best.part.Name); ok {
				entry.Capacity = &gb
			}
		}

		build.Entries = append(build.Entries, entry)
		build.TotalPrice += best.part.Price
	}

	if len(build.Entries) == 0 {
		return nil, &NoComponentsError{Budget: budget}
	}

	return build, nil
}
