package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/study"
)

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, b.Version)
	assert.Len(t, b.Questions, 50)
	assert.Len(t, b.Topics, 9)

	subs := 0
	for _, topic := range b.Topics {
		subs += len(topic.SubTopics)
	}
	assert.Equal(t, 15, subs)

	for i, q := range b.Questions {
		assert.Equal(t, i+1, q.ID, "records must be in id order")
		assert.True(t, q.Category.IsKnown(), "id %d has category %q", q.ID, q.Category)
	}
}

func TestDefault_IsCached(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDefault_TopologyDiagrams(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	var content string
	for _, topic := range b.Topics {
		for _, sub := range topic.SubTopics {
			if sub.ID == "topology" {
				content = sub.Content
			}
		}
	}
	require.NotEmpty(t, content)

	var captions []string
	for _, blk := range study.ParseContent(content) {
		if blk.Kind != study.BlockDiagram {
			continue
		}
		captions = append(captions, blk.Text)
		assert.NotEmpty(t, blk.Lines, "diagram %q has no art", blk.Text)
	}
	require.Len(t, captions, 4)
	for i, prefix := range []string{"Star", "Bus", "Ring", "Full mesh"} {
		assert.Contains(t, captions[i], prefix)
	}
}

func TestDefault_Question(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	q, ok := b.Question(39)
	require.True(t, ok)
	assert.Equal(t, "What is VPN?", q.Question)
	assert.Equal(t, interview.CategorySecurity, q.Category)

	_, ok = b.Question(51)
	assert.False(t, ok)
}

// The embedded bank drives the explorer scenarios end to end.
func TestDefault_ExplorerScenarios(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	qs := b.Questions

	t.Run("everything in id order", func(t *testing.T) {
		got := interview.Visible(qs, interview.Filter{Search: "", Category: "All"})
		require.Len(t, got, 50)
		for i, q := range got {
			assert.Equal(t, i+1, q.ID)
		}
	})

	t.Run("vpn search", func(t *testing.T) {
		got := interview.Visible(qs, interview.Filter{Search: "vpn", Category: "All"})
		require.Len(t, got, 1)
		assert.Equal(t, 39, got[0].ID)
	})

	t.Run("security category", func(t *testing.T) {
		got := interview.Visible(qs, interview.Filter{Category: "Security"})
		var ids []int
		for _, q := range got {
			ids = append(ids, q.ID)
		}
		assert.Equal(t, []int{35, 36, 37, 38, 39, 40}, ids)
	})

	t.Run("no match", func(t *testing.T) {
		got := interview.Visible(qs, interview.Filter{Search: "zzzznotfound", Category: "All"})
		assert.Empty(t, got)
	})

	t.Run("disclosure sequence", func(t *testing.T) {
		e := interview.NewExplorer(qs)
		e.Toggle(7)
		id, ok := e.Disclosure().Expanded()
		assert.True(t, ok)
		assert.Equal(t, 7, id)

		e.Toggle(12)
		id, ok = e.Disclosure().Expanded()
		assert.True(t, ok)
		assert.Equal(t, 12, id)

		e.Toggle(12)
		_, ok = e.Disclosure().Expanded()
		assert.False(t, ok)
	})

	t.Run("category index", func(t *testing.T) {
		assert.Equal(t, []string{
			"All", "General", "OSI/TCP", "IP/Addressing", "Routing",
			"Web", "Hardware", "Security", "Protocols",
		}, interview.Categories(qs))
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantVer bool
		wantMsg string
	}{
		{
			name:    "missing version",
			doc:     "questions: []\n",
			wantMsg: "version",
		},
		{
			name:    "future major version",
			doc:     "version: v2.0.0\nquestions: []\n",
			wantVer: true,
		},
		{
			name:    "not semver",
			doc:     "version: \"1.0\"\nquestions: []\n",
			wantVer: true,
		},
		{
			name: "unknown category",
			doc: `version: v1.0.0
questions:
  - id: 1
    category: Quantum
    question: q
    answer: a
`,
			wantMsg: "invalid bank",
		},
		{
			name: "non-positive id",
			doc: `version: v1.0.0
questions:
  - id: 0
    category: General
    question: q
    answer: a
`,
			wantMsg: "invalid bank",
		},
		{
			name: "duplicate id",
			doc: `version: v1.0.0
questions:
  - id: 1
    category: General
    question: q
    answer: a
  - id: 1
    category: Web
    question: q2
    answer: a2
`,
			wantMsg: "duplicate question id 1",
		},
		{
			name: "duplicate sub-topic",
			doc: `version: v1.0.0
topics:
  - id: t
    title: T
    subtopics:
      - id: s
        title: S
        content: x
      - id: s
        title: S2
        content: y
`,
			wantMsg: `duplicate sub-topic id "s"`,
		},
		{
			name:    "empty document",
			doc:     "",
			wantMsg: "document is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.wantVer {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_CollectsEveryProblem(t *testing.T) {
	doc := `version: v1.0.0
questions:
  - id: 2
    category: General
    question: a
    answer: a
  - id: 2
    category: General
    question: b
    answer: b
topics:
  - id: t
    title: T
    subtopics:
      - {id: s, title: S, content: c}
  - id: t
    title: T again
    subtopics:
      - {id: s, title: S, content: c}
`
	_, err := Parse([]byte(doc))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}

func TestParse_MinorVersionAccepted(t *testing.T) {
	doc := `version: v1.4.2
questions:
  - id: 1
    category: Routing
    question: What is RIP?
    answer: A distance vector protocol.
`
	b, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "v1.4.2", b.Version)
	assert.Len(t, b.Questions, 1)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	doc := `version: v1.0.0
questions:
  - id: 1
    category: Web
    question: What is QUIC?
    answer: UDP based transport used by HTTP/3.
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, b.Questions, 1)
	assert.Equal(t, "What is QUIC?", b.Questions[0].Question)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def.Topics, b.Topics, "topics fall back to the embedded set")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
