// Package bank loads the content bundle: the interview question records
// and the study topic tree. The default bundle is embedded in the binary.
package bank

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/study"
)

//go:embed data/questions.yaml data/topics.yaml
var dataFS embed.FS

// SupportedVersion is the bundle format this build reads. Bundles with a
// different major version are rejected.
const SupportedVersion = "v1.0.0"

// ErrUnsupportedVersion is returned for bundles with a missing, malformed or
// incompatible version header.
var ErrUnsupportedVersion = errors.New("unsupported bank version")

// Bank is a validated content bundle.
type Bank struct {
	Version   string
	Questions []interview.Question
	Topics    []study.Topic
}

// Question returns the record with the given id.
func (b *Bank) Question(id int) (interview.Question, bool) {
	return interview.Find(b.Questions, id)
}

// document is one YAML file of a bundle. Either section may be absent.
type document struct {
	Version   string               `yaml:"version"`
	Questions []interview.Question `yaml:"questions"`
	Topics    []study.Topic        `yaml:"topics"`
}

var loadDefault = sync.OnceValues(func() (*Bank, error) {
	questions, err := dataFS.ReadFile("data/questions.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded questions: %w", err)
	}
	topics, err := dataFS.ReadFile("data/topics.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded topics: %w", err)
	}
	return Parse(questions, topics)
})

// Default returns the embedded bundle. It is parsed once per process.
func Default() (*Bank, error) {
	return loadDefault()
}

// LoadFile reads an external bundle. A file that carries no topics keeps the
// embedded study material, so a bundle may override questions only.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}

	if len(b.Topics) == 0 {
		def, err := Default()
		if err != nil {
			return nil, err
		}
		b.Topics = def.Topics
	}
	return b, nil
}

// Parse validates and merges one or more YAML documents into a Bank. All
// documents must carry a compatible version; their sections are concatenated
// in argument order.
func Parse(docs ...[]byte) (*Bank, error) {
	b := &Bank{}
	var problems []string

	for i, raw := range docs {
		doc, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		if err := checkVersion(doc.Version); err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		if b.Version == "" {
			b.Version = doc.Version
		}
		b.Questions = append(b.Questions, doc.Questions...)
		b.Topics = append(b.Topics, doc.Topics...)
	}

	problems = append(problems, checkQuestions(b.Questions)...)
	problems = append(problems, checkTopics(b.Topics)...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return b, nil
}
