package domain

// KripkeNode is one reachable configuration of a machine.
type KripkeNode struct {
	ID         string            `json:"id"`
	State      string            `json:"state"`
	Properties map[string]string `json:"properties,omitempty"`
}

// KripkeEdge is a timed transition between two configurations.
type KripkeEdge struct {
	Target string `json:"target"`
	Time   uint64 `json:"time"`
	Energy uint64 `json:"energy"`
}

// KripkeStructure is the state space of a machine, persisted as output.json.
type KripkeStructure struct {
	Nodes []KripkeNode            `json:"nodes"`
	Edges map[string][]KripkeEdge `json:"edges"`
}

// EdgeCount returns the total number of edges.
func (k KripkeStructure) EdgeCount() int {
	n := 0
	for _, edges := range k.Edges {
		n += len(edges)
	}
	return n
}
