// Package interview implements the Q&A explorer: the category index, the
// search and category filter, and single-row answer disclosure.
package interview

// Category is one label from the closed set of interview question categories.
type Category string

const (
	CategoryGeneral      Category = "General"
	CategoryOSITCP       Category = "OSI/TCP"
	CategoryIPAddressing Category = "IP/Addressing"
	CategorySecurity     Category = "Security"
	CategoryProtocols    Category = "Protocols"
	CategoryHardware     Category = "Hardware"
	CategoryRouting      Category = "Routing"
	CategoryWeb          Category = "Web"
)

// AllCategories is the filter sentinel meaning "no category restriction".
// It is never a category of a question.
const AllCategories = "All"

// KnownCategories returns the category enumeration in declaration order.
func KnownCategories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryOSITCP,
		CategoryIPAddressing,
		CategorySecurity,
		CategoryProtocols,
		CategoryHardware,
		CategoryRouting,
		CategoryWeb,
	}
}

// IsKnown reports whether c belongs to the category enumeration.
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// Question is a single interview record. Records are immutable once loaded.
type Question struct {
	ID       int      `yaml:"id" json:"id"`
	Question string   `yaml:"question" json:"question"`
	Answer   string   `yaml:"answer" json:"answer"`
	Category Category `yaml:"category" json:"category"`
}
