package privacy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/querylanguage"
)

// Policy decision sentinel errors.
//
// These errors are used as return values from policy rules to indicate
// how the policy evaluation should proceed. Use errors.Is() to check
// for these values:
//
//	if errors.Is(err, privacy.Allow) { ... }
//	if errors.Is(err, privacy.Deny) { ... }
//	if errors.Is(err, privacy.Skip) { ... }
var (
	// Allow may be returned by rules to indicate that the policy
	// evaluation should terminate with an allow decision.
	// When returned from a policy, the operation is permitted.
	Allow = errors.New("grafo/privacy: allow rule")

	// Deny may be returned by rules to indicate that the policy
	// evaluation should terminate with a deny decision.
	// When returned from a policy, the operation is rejected.
	Deny = errors.New("grafo/privacy: deny rule")

	// Skip may be returned by rules to indicate that the policy
	// evaluation should continue to the next rule in the chain.
	// This allows rules to abstain from making a decision.
	Skip = errors.New("grafo/privacy: skip rule")
)

// Allowf returns a formatted wrapped Allow decision.
// The returned error wraps Allow and can be checked with errors.Is(err, Allow).
func Allowf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Allow)...)
}

// Denyf returns a formatted wrapped Deny decision.
// The returned error wraps Deny and can be checked with errors.Is(err, Deny).
func Denyf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Deny)...)
}

// Skipf returns a formatted wrapped Skip decision.
// The returned error wraps Skip and can be checked with errors.Is(err, Skip).
func Skipf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Skip)...)
}

// Op is a bitmask of the store operations a rule can match.
type Op uint

// Store operations, one bit each.
const (
	OpCreate Op = 1 << iota // vertex creation
	OpRead                  // single vertex lookup by id
	OpScan                  // iteration over a label
	OpUpdate                // property replacement
	OpDelete                // vertex removal

	// OpQuery groups the read operations.
	OpQuery = OpRead | OpScan
	// OpMutation groups the write operations.
	OpMutation = OpCreate | OpUpdate | OpDelete
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "create"},
	{OpRead, "read"},
	{OpScan, "scan"},
	{OpUpdate, "update"},
	{OpDelete, "delete"},
}

// Is reports whether o is contained in the given bitmask.
func (o Op) Is(op Op) bool { return o&op != 0 }

// String returns the lower-case name of the operation, joining combined
// masks with "|".
func (o Op) String() string {
	parts := make([]string, 0, 1)
	for _, e := range opNames {
		if o.Is(e.op) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Op(%d)", uint(o))
	}
	return strings.Join(parts, "|")
}

// Query describes one read under policy evaluation: a single vertex
// lookup (OpRead) or a label scan (OpScan).
type Query struct {
	// Op is OpRead or OpScan.
	Op Op
	// Label is the scanned label. It is empty for id lookups.
	Label string
	// ID is the requested identifier. It is zero for scans.
	ID dialect.ID

	filter querylanguage.P
}

// Where restricts the vertices the query may see to those matching the
// given predicate. Multiple calls compose with And. On scans the
// predicate drops non-matching vertices from the sequence; on lookups a
// non-matching vertex is reported as not found.
func (q *Query) Where(p querylanguage.P) {
	if q.filter == nil {
		q.filter = p
		return
	}
	q.filter = querylanguage.And(q.filter, p)
}

// Mutation describes one write under policy evaluation.
type Mutation struct {
	// Op is OpCreate, OpUpdate or OpDelete.
	Op Op
	// Label is the vertex label. It is known for creates only; updates
	// and deletes address the vertex by id.
	Label string
	// ID is the target identifier. It is nil for creates that let the
	// store assign one.
	ID *dialect.ID
	// Properties is the property payload of creates and updates, nil
	// for deletes. Rules share the map with the store and may adjust it.
	Properties map[string]any
}

// Field returns the property value the mutation carries under the given
// name, and whether it is present.
func (m *Mutation) Field(name string) (any, bool) {
	if m.Properties == nil {
		return nil, false
	}
	v, ok := m.Properties[name]
	return v, ok
}

type (
	// QueryRule defines the interface deciding whether a query is
	// allowed and optionally narrow it.
	QueryRule interface {
		EvalQuery(context.Context, *Query) error
	}

	// QueryPolicy combines multiple query rules into a single policy.
	QueryPolicy []QueryRule

	// MutationRule defines the interface deciding whether a mutation
	// is allowed and optionally modify it.
	MutationRule interface {
		EvalMutation(context.Context, *Mutation) error
	}

	// MutationPolicy combines multiple mutation rules into a single policy.
	MutationPolicy []MutationRule

	// QueryMutationRule is an interface which groups query and mutation rules.
	QueryMutationRule interface {
		QueryRule
		MutationRule
	}
)

// QueryRuleFunc type is an adapter which allows the use of
// ordinary functions as query rules.
type QueryRuleFunc func(context.Context, *Query) error

// EvalQuery returns f(ctx, q).
func (f QueryRuleFunc) EvalQuery(ctx context.Context, q *Query) error {
	return f(ctx, q)
}

// MutationRuleFunc type is an adapter which allows the use of
// ordinary functions as mutation rules.
type MutationRuleFunc func(context.Context, *Mutation) error

// EvalMutation returns f(ctx, m).
func (f MutationRuleFunc) EvalMutation(ctx context.Context, m *Mutation) error {
	return f(ctx, m)
}

// AlwaysAllowRule returns a rule that always returns an Allow decision.
// This rule unconditionally permits both queries and mutations.
func AlwaysAllowRule() QueryMutationRule {
	return fixedDecision{Allow}
}

// AlwaysDenyRule returns a rule that always returns a Deny decision.
// This rule unconditionally rejects both queries and mutations.
func AlwaysDenyRule() QueryMutationRule {
	return fixedDecision{Deny}
}

// ContextQueryMutationRule creates a query/mutation rule from a context evaluation function.
// The provided function receives the context and should return Allow, Deny, Skip, or nil.
// Returning nil is equivalent to returning Skip.
func ContextQueryMutationRule(eval func(context.Context) error) QueryMutationRule {
	return contextDecision{eval}
}

// OnMutationOperation evaluates the given rule only on a given mutation operation.
func OnMutationOperation(rule MutationRule, op Op) MutationRule {
	return MutationRuleFunc(func(ctx context.Context, m *Mutation) error {
		if m.Op.Is(op) {
			return rule.EvalMutation(ctx, m)
		}
		return Skip
	})
}

// DenyMutationOperationRule returns a rule denying specified mutation operation.
func DenyMutationOperationRule(op Op) MutationRule {
	rule := MutationRuleFunc(func(_ context.Context, m *Mutation) error {
		return Denyf("grafo/privacy: operation %s is not allowed", m.Op)
	})
	return OnMutationOperation(rule, op)
}

// AllowMutationOperationRule returns a rule allowing specified mutation operation.
func AllowMutationOperationRule(op Op) MutationRule {
	rule := MutationRuleFunc(func(context.Context, *Mutation) error {
		return Allow
	})
	return OnMutationOperation(rule, op)
}

// Policy groups query and mutation policies.
type Policy struct {
	Query    QueryPolicy
	Mutation MutationPolicy
}

// EvalQuery forwards evaluation to the query policy.
func (p Policy) EvalQuery(ctx context.Context, q *Query) error {
	return p.Query.EvalQuery(ctx, q)
}

// EvalMutation forwards evaluation to the mutation policy.
func (p Policy) EvalMutation(ctx context.Context, m *Mutation) error {
	return p.Mutation.EvalMutation(ctx, m)
}

// Policies combines multiple policies into a single policy. It is the
// evaluation entry point used by the Graph decorator: an Allow decision
// from one of the policies stops the evaluation with a nil error.
type Policies []Policy

// EvalQuery evaluates the query policies. If the Allow error is returned
// from one of the policies, it stops the evaluation with a nil error.
func (policies Policies) EvalQuery(ctx context.Context, q *Query) error {
	return policies.eval(ctx, func(policy Policy) error {
		return policy.EvalQuery(ctx, q)
	})
}

// EvalMutation evaluates the mutation policies. If the Allow error is returned
// from one of the policies, it stops the evaluation with a nil error.
func (policies Policies) EvalMutation(ctx context.Context, m *Mutation) error {
	return policies.eval(ctx, func(policy Policy) error {
		return policy.EvalMutation(ctx, m)
	})
}

func (policies Policies) eval(ctx context.Context, eval func(Policy) error) error {
	if decision, ok := DecisionFromContext(ctx); ok {
		return decision
	}
	for _, policy := range policies {
		switch decision := eval(policy); {
		case decision == nil || errors.Is(decision, Skip):
		case errors.Is(decision, Allow):
			return nil
		default:
			return decision
		}
	}
	return nil
}

// EvalQuery evaluates a query against a query policy.
func (policies QueryPolicy) EvalQuery(ctx context.Context, q *Query) error {
	for _, policy := range policies {
		switch decision := policy.EvalQuery(ctx, q); {
		case decision == nil || errors.Is(decision, Skip):
		default:
			return decision
		}
	}
	return nil
}

// EvalMutation evaluates a mutation against a mutation policy.
func (policies MutationPolicy) EvalMutation(ctx context.Context, m *Mutation) error {
	for _, policy := range policies {
		switch decision := policy.EvalMutation(ctx, m); {
		case decision == nil || errors.Is(decision, Skip):
		default:
			return decision
		}
	}
	return nil
}

type decisionCtxKey struct{}

// DecisionContext creates a new context from the given parent context with
// a policy decision attach to it.
func DecisionContext(parent context.Context, decision error) context.Context {
	if decision == nil || errors.Is(decision, Skip) {
		return parent
	}
	return context.WithValue(parent, decisionCtxKey{}, decision)
}

// DecisionFromContext retrieves the policy decision from the context.
func DecisionFromContext(ctx context.Context) (error, bool) {
	decision, ok := ctx.Value(decisionCtxKey{}).(error)
	if ok && errors.Is(decision, Allow) {
		decision = nil
	}
	return decision, ok
}

type fixedDecision struct {
	decision error
}

func (f fixedDecision) EvalQuery(context.Context, *Query) error {
	return f.decision
}

func (f fixedDecision) EvalMutation(context.Context, *Mutation) error {
	return f.decision
}

type contextDecision struct {
	eval func(context.Context) error
}

func (c contextDecision) EvalQuery(ctx context.Context, _ *Query) error {
	return c.eval(ctx)
}

func (c contextDecision) EvalMutation(ctx context.Context, _ *Mutation) error {
	return c.eval(ctx)
}

// Filter is the interface that wraps the Where method for narrowing the
// vertices a query may see. It is implemented by *Query and allows
// writing generic filtering rules that work across labels.
type Filter interface {
	// Where restricts the query to vertices matching the predicate.
	Where(querylanguage.P)
}

// FilterFunc is an adapter that allows using ordinary functions as
// query rules that filter results instead of denying the whole query.
//
// Example usage:
//
//	privacy.FilterFunc(func(ctx context.Context, f privacy.Filter) error {
//	    f.Where(querylanguage.StringEQ(workspaceID).Field("workspace_id"))
//	    return privacy.Skip
//	})
type FilterFunc func(context.Context, Filter) error

// EvalQuery calls f(ctx, q).
func (f FilterFunc) EvalQuery(ctx context.Context, q *Query) error {
	return f(ctx, q)
}

// EvalMutation denies the mutation; mutations do not support filtering.
func (f FilterFunc) EvalMutation(_ context.Context, m *Mutation) error {
	return Denyf("grafo/privacy: %s mutation does not support filtering", m.Op)
}

var _ QueryMutationRule = FilterFunc(nil)
