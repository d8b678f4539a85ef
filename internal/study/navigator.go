package study

// Position addresses one sub-topic by its topic index and sub-topic index.
type Position struct {
	Topic int
	Sub   int
}

// Navigator walks the sub-topics of a topic tree in reading order: every
// sub-topic of the first topic, then every sub-topic of the second, and so
// on. Movement stops at both ends.
type Navigator struct {
	topics []Topic
	order  []Position
	index  map[Position]int
}

// NewNavigator builds a Navigator over topics. Topics without sub-topics are
// skipped in the reading order.
func NewNavigator(topics []Topic) *Navigator {
	n := &Navigator{
		topics: topics,
		index:  make(map[Position]int),
	}
	for ti, t := range topics {
		for si := range t.SubTopics {
			p := Position{Topic: ti, Sub: si}
			n.index[p] = len(n.order)
			n.order = append(n.order, p)
		}
	}
	return n
}

// Topics returns the underlying topic tree.
func (n *Navigator) Topics() []Topic { return n.topics }

// Len returns the number of sub-topics in reading order.
func (n *Navigator) Len() int { return len(n.order) }

// First returns the first sub-topic, or false when the tree is empty.
func (n *Navigator) First() (Position, bool) {
	if len(n.order) == 0 {
		return Position{}, false
	}
	return n.order[0], true
}

// Find locates a sub-topic by topic and sub-topic id.
func (n *Navigator) Find(topicID, subID string) (Position, bool) {
	for ti, t := range n.topics {
		if t.ID != topicID {
			continue
		}
		for si, s := range t.SubTopics {
			if s.ID == subID {
				return Position{Topic: ti, Sub: si}, true
			}
		}
	}
	return Position{}, false
}

// Next returns the sub-topic after p. It returns p and false at the end or
// when p is not a valid position.
func (n *Navigator) Next(p Position) (Position, bool) {
	i, ok := n.index[p]
	if !ok || i+1 >= len(n.order) {
		return p, false
	}
	return n.order[i+1], true
}

// Prev returns the sub-topic before p. It returns p and false at the start
// or when p is not a valid position.
func (n *Navigator) Prev(p Position) (Position, bool) {
	i, ok := n.index[p]
	if !ok || i == 0 {
		return p, false
	}
	return n.order[i-1], true
}

// Ordinal returns the 1-based reading-order number of p, or 0 if p is not
// valid.
func (n *Navigator) Ordinal(p Position) int {
	i, ok := n.index[p]
	if !ok {
		return 0
	}
	return i + 1
}

// At resolves p to its topic and sub-topic.
func (n *Navigator) At(p Position) (Topic, SubTopic, bool) {
	if _, ok := n.index[p]; !ok {
		return Topic{}, SubTopic{}, false
	}
	t := n.topics[p.Topic]
	return t, t.SubTopics[p.Sub], true
}
