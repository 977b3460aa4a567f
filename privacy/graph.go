package privacy

import (
	"context"
	"iter"

	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/querylanguage"
)

// Graph wraps a vertex store and evaluates policies before every
// operation reaches it. It implements dialect.Graph, so a wrapped store
// drops into any code that takes one, generated clients included.
//
// Denials surface as the rule's decision error. A read filter that
// excludes the requested vertex surfaces as not found, so callers cannot
// distinguish a hidden vertex from a missing one.
type Graph struct {
	g        dialect.Graph
	policies Policies
}

// NewGraph wraps the given store with the given policies. Policies are
// evaluated in order; see Policies for the decision semantics.
func NewGraph(g dialect.Graph, policies ...Policy) *Graph {
	return &Graph{g: g, policies: policies}
}

var _ dialect.Graph = (*Graph)(nil)

// CreateVertex evaluates the mutation policies and forwards to the
// store. Rules see the label, the requested id and the property map.
func (pg *Graph) CreateVertex(ctx context.Context, label string, id *dialect.ID, properties map[string]any) (dialect.Vertex, error) {
	m := &Mutation{Op: OpCreate, Label: label, ID: id, Properties: properties}
	if err := pg.policies.EvalMutation(ctx, m); err != nil {
		return nil, err
	}
	return pg.g.CreateVertex(ctx, label, id, properties)
}

// Vertex evaluates the query policies and forwards to the store. When a
// rule attached a filter and the stored vertex does not match it, the
// lookup reports not found.
func (pg *Graph) Vertex(ctx context.Context, id dialect.ID) (dialect.Vertex, error) {
	q := &Query{Op: OpRead, ID: id}
	if err := pg.policies.EvalQuery(ctx, q); err != nil {
		return nil, err
	}
	v, err := pg.g.Vertex(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.filter != nil {
		ok, err := querylanguage.Eval(q.filter, v.Properties())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, dialect.NewNotFoundErrorWithID(v.Label(), id)
		}
	}
	return v, nil
}

// VerticesByLabel evaluates the query policies and forwards to the
// store. A filter attached by a rule drops non-matching vertices from
// the sequence.
func (pg *Graph) VerticesByLabel(ctx context.Context, label string) iter.Seq2[dialect.Vertex, error] {
	q := &Query{Op: OpScan, Label: label}
	if err := pg.policies.EvalQuery(ctx, q); err != nil {
		return func(yield func(dialect.Vertex, error) bool) {
			yield(nil, err)
		}
	}
	seq := pg.g.VerticesByLabel(ctx, label)
	if q.filter != nil {
		seq = querylanguage.Filter(seq, q.filter)
	}
	return seq
}

// ReplaceProperties evaluates the mutation policies and forwards to the
// store. The mutation carries no label; updates address the vertex by id.
func (pg *Graph) ReplaceProperties(ctx context.Context, id dialect.ID, properties map[string]any) error {
	m := &Mutation{Op: OpUpdate, ID: &id, Properties: properties}
	if err := pg.policies.EvalMutation(ctx, m); err != nil {
		return err
	}
	return pg.g.ReplaceProperties(ctx, id, properties)
}

// DeleteVertex evaluates the mutation policies and forwards to the
// store. The mutation carries no label and no properties.
func (pg *Graph) DeleteVertex(ctx context.Context, id dialect.ID) error {
	m := &Mutation{Op: OpDelete, ID: &id}
	if err := pg.policies.EvalMutation(ctx, m); err != nil {
		return err
	}
	return pg.g.DeleteVertex(ctx, id)
}

// Close closes the wrapped store.
func (pg *Graph) Close() error {
	return pg.g.Close()
}
