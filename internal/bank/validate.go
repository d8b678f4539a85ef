package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/study"
)

// ValidationError lists every problem found in a bundle.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid bank: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid bank: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func checkQuestions(qs []interview.Question) []string {
	var problems []string
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			problems = append(problems, fmt.Sprintf("duplicate question id %d", q.ID))
		}
		seen[q.ID] = true
	}
	return problems
}

func checkTopics(topics []study.Topic) []string {
	var problems []string
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if seen[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate topic id %q", t.ID))
		}
		seen[t.ID] = true

		subs := make(map[string]bool, len(t.SubTopics))
		for _, s := range t.SubTopics {
			if subs[s.ID] {
				problems = append(problems, fmt.Sprintf("topic %q: duplicate sub-topic id %q", t.ID, s.ID))
			}
			subs[s.ID] = true
		}
	}
	return problems
}
