package committer

import "cloud.google.com/go/spanner"

// Plan accumulates the mutations of one business operation: the aggregate
// write, dependent rows and outbox events. Handing the whole plan to the
// Committer puts everything into a single commit.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation. Nil is skipped, so repos may return nil for
// no-op updates and callers can add unconditionally.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
