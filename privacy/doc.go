// Package privacy provides policy types and rule helpers for
// authorizing graph access, and a store decorator that evaluates them
// at runtime.
//
// The privacy layer sits between the marshalling API and the vertex
// store: wrapping a store with NewGraph makes every create, read, scan,
// update and delete pass policy evaluation before it reaches the store.
//
// # Core Concepts
//
// The privacy layer is built around three main concepts:
//
//   - Policy: a chain of rules evaluated against an operation
//   - Rule: a function that returns Allow, Deny, or Skip decisions
//   - Viewer: an interface representing the current user/context
//
// # Wrapping a Store
//
// Policies are attached by wrapping the store:
//
//	store := inmem.New()
//	guarded := privacy.NewGraph(store, privacy.Policy{
//	    Mutation: privacy.MutationPolicy{
//	        privacy.DenyIfNoViewer(),      // require authentication
//	        privacy.HasRole("admin"),      // allow admins
//	        privacy.IsOwner("user_id"),    // allow owners
//	        privacy.AlwaysDenyRule(),      // deny by default
//	    },
//	    Query: privacy.QueryPolicy{
//	        privacy.AlwaysAllowRule(),
//	    },
//	})
//
// The wrapped store implements dialect.Graph, so it drops into the
// binding helpers and generated clients unchanged.
//
// # Rule Evaluation
//
// Rules are evaluated in order until one returns a final decision:
//
//   - Allow: grants access and stops evaluation
//   - Deny: denies access and stops evaluation
//   - Skip: continues to the next rule
//
// A policy whose rules all skip permits the operation; end the chain
// with AlwaysDenyRule to default to deny instead.
//
// # Viewers
//
// Rules identify the caller through the Viewer attached to the context:
//
//	viewer := &privacy.SimpleViewer{UserID: "u7", Roles: []string{"admin"}}
//	ctx = privacy.WithViewer(ctx, viewer)
//
// # Filtering Instead of Denying
//
// Query rules may narrow what a query sees instead of rejecting it.
// A FilterFunc receives the query and attaches a predicate:
//
//	privacy.FilterFunc(func(ctx context.Context, f privacy.Filter) error {
//	    f.Where(querylanguage.StringEQ(tenantID).Field("tenant_id"))
//	    return privacy.Skip
//	})
//
// Scans drop non-matching vertices from the sequence; lookups of a
// non-matching vertex report not found, hiding its existence. The
// built-in OwnerQueryRule and TenantQueryRule are filtering rules.
//
// # Decision Overrides
//
// DecisionContext bypasses evaluation for one call chain, which is
// useful for trusted internal work:
//
//	ctx = privacy.DecisionContext(ctx, privacy.Allow)
package privacy
