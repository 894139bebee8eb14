// Package quiz selects the next question to serve in a quiz round. The
// picker holds no state between calls; the already-served ids arrive
// from the caller on every invocation.
package quiz

import (
	"math/rand"

	"github.com/showhub/showhub-go/internal/models"
)

// Remaining filters out candidates whose id appears in previous,
// preserving order.
func Remaining(candidates []models.Question, previous []uint) []models.Question {
	seen := make(map[uint]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}
	remaining := make([]models.Question, 0, len(candidates))
	for _, q := range candidates {
		if !seen[q.ID] {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

// Pick returns one uniformly random question from remaining, or nil
// when the set is exhausted. Exhaustion is a normal outcome, not an
// error; it signals quiz completion to the caller.
func Pick(remaining []models.Question) *models.Question {
	if len(remaining) == 0 {
		return nil
	}
	q := remaining[rand.Intn(len(remaining))]
	return &q
}
