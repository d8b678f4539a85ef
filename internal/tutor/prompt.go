package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/netprep/internal/interview"
)

const systemPrompt = `You are a senior network engineer coaching a candidate for a computer networking interview. Expand on the reference answer without contradicting it. Be precise and concise.`

func buildUserMessage(q interview.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", q.Category)
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	fmt.Fprintf(&b, "Reference answer: %s\n", q.Answer)
	b.WriteString("\nExplain this topic so the candidate can answer confidently and handle follow-up questions.")
	return b.String()
}
