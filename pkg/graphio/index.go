package graphio

// NodeIndex maps textual node labels onto dense int64 IDs assigned in
// first-seen order. Sorting by ID therefore reproduces input order.
type NodeIndex struct {
	ids    map[string]int64
	labels []string
}

func NewNodeIndex() *NodeIndex {
	return &NodeIndex{ids: make(map[string]int64)}
}

// Intern returns the ID for label, assigning the next one if unseen.
func (x *NodeIndex) Intern(label string) (id int64, added bool) {
	if id, ok := x.ids[label]; ok {
		return id, false
	}
	id = int64(len(x.labels))
	x.ids[label] = id
	x.labels = append(x.labels, label)
	return id, true
}

func (x *NodeIndex) ID(label string) (int64, bool) {
	id, ok := x.ids[label]
	return id, ok
}

// Label returns the label for id, or "" when id is unknown.
func (x *NodeIndex) Label(id int64) string {
	if id < 0 || id >= int64(len(x.labels)) {
		return ""
	}
	return x.labels[id]
}

func (x *NodeIndex) Len() int { return len(x.labels) }
