// Package study holds the study-mode topic tree and the navigation order
// across its sub-topics.
package study

// Topic is a titled group of sub-topics shown as one section of the sidebar.
type Topic struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Icon      string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	SubTopics []SubTopic `yaml:"subtopics" json:"subtopics"`
}

// SubTopic is one readable page of study material.
//
// Content is opaque to everything except the renderer; see ParseContent for
// the line markers it understands.
type SubTopic struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// FindTopic returns the topic with the given id.
func FindTopic(topics []Topic, id string) (Topic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// SubTopic returns the sub-topic of t with the given id.
func (t Topic) SubTopic(id string) (SubTopic, bool) {
	for _, s := range t.SubTopics {
		if s.ID == id {
			return s, true
		}
	}
	return SubTopic{}, false
}
