// Package querylanguage provides a typed, store-agnostic predicate
// language over record fields. Predicates are built with constructors,
// render to a stable textual form, and can be evaluated in memory
// against vertex property maps.
package querylanguage

//go:generate go run internal/gen.go

import (
	"encoding/json"
	"fmt"
	"strings"
)

type (
	// Expr represents a node of the predicate language. All nodes
	// implement the Expr interface.
	Expr interface {
		fmt.Stringer
		expr()
	}

	// P is an expression that evaluates to a boolean value.
	P interface {
		Expr

		// Negate returns the negated form of the predicate.
		Negate() P
	}
)

type (
	// Field is an expression for a property field by name.
	Field struct {
		Name string
	}

	// Edge is an expression for an edge by name.
	Edge struct {
		Name string
	}

	// Value is an expression for a literal value.
	Value struct {
		V any
	}
)

// F returns a field expression for the given name.
func F(name string) *Field {
	return &Field{Name: name}
}

// String returns the field name.
func (f *Field) String() string { return f.Name }

// String returns the edge name.
func (e *Edge) String() string { return e.Name }

// String returns the JSON form of the literal.
// A nil literal renders as "nil".
func (v *Value) String() string {
	if v == nil || v.V == nil {
		return "nil"
	}
	buf, err := json.Marshal(v.V)
	if err != nil {
		return fmt.Sprint(v.V)
	}
	return string(buf)
}

func (*Field) expr() {}
func (*Edge) expr()  {}
func (*Value) expr() {}

// An Op is a predicate operator.
type Op int

// Builtin operators.
const (
	OpAnd   Op = iota // &&
	OpOr              // ||
	OpNot             // !
	OpEQ              // ==
	OpNEQ             // !=
	OpGT              // >
	OpGTE             // >=
	OpLT              // <
	OpLTE             // <=
	OpIn              // in
	OpNotIn           // not in
)

var ops = [...]string{
	OpAnd:   "&&",
	OpOr:    "||",
	OpNot:   "!",
	OpEQ:    "==",
	OpNEQ:   "!=",
	OpGT:    ">",
	OpGTE:   ">=",
	OpLT:    "<",
	OpLTE:   "<=",
	OpIn:    "in",
	OpNotIn: "not in",
}

// String returns the textual form of the operator.
func (o Op) String() string {
	if o < 0 || int(o) >= len(ops) {
		return ""
	}
	return ops[o]
}

// A Func is a builtin function of the predicate language.
type Func string

// Builtin functions.
const (
	FuncEqualFold    Func = "equal_fold"
	FuncContains     Func = "contains"
	FuncContainsFold Func = "contains_fold"
	FuncHasPrefix    Func = "has_prefix"
	FuncHasSuffix    Func = "has_suffix"
	FuncHasEdge      Func = "has_edge"
)

type (
	// A BinaryExpr applies an operator on two operands,
	// for example name == "a8m".
	BinaryExpr struct {
		Op   Op
		X, Y Expr
	}

	// A UnaryExpr applies an operator on one operand,
	// for example !(name == "a8m").
	UnaryExpr struct {
		Op Op
		X  Expr
	}

	// A NaryExpr applies an operator on three or more operands,
	// for example (a == 1 && b == 2 && c == 3).
	NaryExpr struct {
		Op Op
		Xs []P
	}

	// A CallExpr applies a builtin function on its arguments,
	// for example contains(name, "a8m").
	CallExpr struct {
		Func Func
		Args []Expr
	}
)

func (*BinaryExpr) expr() {}
func (*UnaryExpr) expr()  {}
func (*NaryExpr) expr()   {}
func (*CallExpr) expr()   {}

// String returns the textual form of the expression.
func (n *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", n.X, n.Op, n.Y)
}

// Negate returns the negated form of the expression.
func (n *BinaryExpr) Negate() P {
	return Not(n)
}

// String returns the textual form of the expression.
func (n *UnaryExpr) String() string {
	return fmt.Sprintf("%s(%s)", n.Op, n.X)
}

// Negate returns the negated form of the expression.
func (n *UnaryExpr) Negate() P {
	return Not(n)
}

// String returns the textual form of the expression.
func (n *NaryExpr) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range n.Xs {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(n.Op.String())
			b.WriteByte(' ')
		}
		b.WriteString(x.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Negate returns the negated form of the expression.
func (n *NaryExpr) Negate() P {
	return Not(n)
}

// String returns the textual form of the expression.
func (n *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(string(n.Func))
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Negate returns the negated form of the expression.
func (n *CallExpr) Negate() P {
	return Not(n)
}

// And returns a predicate that is satisfied when all predicates are
// satisfied.
func And(x, y P, z ...P) P {
	if len(z) == 0 {
		return &BinaryExpr{Op: OpAnd, X: x, Y: y}
	}
	return &NaryExpr{Op: OpAnd, Xs: append([]P{x, y}, z...)}
}

// Or returns a predicate that is satisfied when at least one of the
// predicates is satisfied.
func Or(x, y P, z ...P) P {
	if len(z) == 0 {
		return &BinaryExpr{Op: OpOr, X: x, Y: y}
	}
	return &NaryExpr{Op: OpOr, Xs: append([]P{x, y}, z...)}
}

// Not returns the negation of the given predicate.
func Not(x P) P {
	return &UnaryExpr{Op: OpNot, X: x}
}

// EQ returns a predicate to check that x equals y.
func EQ(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpEQ, X: x, Y: y}
}

// NEQ returns a predicate to check that x does not equal y.
func NEQ(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpNEQ, X: x, Y: y}
}

// GT returns a predicate to check that x is greater than y.
func GT(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpGT, X: x, Y: y}
}

// GTE returns a predicate to check that x is greater than or equal to y.
func GTE(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpGTE, X: x, Y: y}
}

// LT returns a predicate to check that x is less than y.
func LT(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpLT, X: x, Y: y}
}

// LTE returns a predicate to check that x is less than or equal to y.
func LTE(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpLTE, X: x, Y: y}
}

// FieldEQ returns a predicate to check that the named field equals the
// given value.
func FieldEQ(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpEQ, X: F(name), Y: &Value{V: v}}
}

// FieldNEQ returns a predicate to check that the named field does not
// equal the given value.
func FieldNEQ(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpNEQ, X: F(name), Y: &Value{V: v}}
}

// FieldGT returns a predicate to check that the named field is greater
// than the given value.
func FieldGT(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpGT, X: F(name), Y: &Value{V: v}}
}

// FieldGTE returns a predicate to check that the named field is greater
// than or equal to the given value.
func FieldGTE(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpGTE, X: F(name), Y: &Value{V: v}}
}

// FieldLT returns a predicate to check that the named field is less
// than the given value.
func FieldLT(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpLT, X: F(name), Y: &Value{V: v}}
}

// FieldLTE returns a predicate to check that the named field is less
// than or equal to the given value.
func FieldLTE(name string, v any) *BinaryExpr {
	return &BinaryExpr{Op: OpLTE, X: F(name), Y: &Value{V: v}}
}

// FieldIn returns a predicate to check that the named field equals one
// of the given values.
func FieldIn(name string, vs ...any) *BinaryExpr {
	return &BinaryExpr{Op: OpIn, X: F(name), Y: &Value{V: vs}}
}

// FieldNotIn returns a predicate to check that the named field equals
// none of the given values.
func FieldNotIn(name string, vs ...any) *BinaryExpr {
	return &BinaryExpr{Op: OpNotIn, X: F(name), Y: &Value{V: vs}}
}

// FieldNil returns a predicate to check that the named field is absent
// or nil.
func FieldNil(name string) *BinaryExpr {
	return &BinaryExpr{Op: OpEQ, X: F(name), Y: &Value{}}
}

// FieldNotNil returns a predicate to check that the named field carries
// a non-nil value.
func FieldNotNil(name string) *BinaryExpr {
	return &BinaryExpr{Op: OpNEQ, X: F(name), Y: &Value{}}
}

// FieldContains returns a predicate to check that the named string
// field contains the given substring.
func FieldContains(name, substr string) *CallExpr {
	return &CallExpr{Func: FuncContains, Args: []Expr{F(name), &Value{V: substr}}}
}

// FieldContainsFold returns a predicate to check that the named string
// field contains the given substring under case-folding.
func FieldContainsFold(name, substr string) *CallExpr {
	return &CallExpr{Func: FuncContainsFold, Args: []Expr{F(name), &Value{V: substr}}}
}

// FieldEqualFold returns a predicate to check that the named string
// field equals the given string under case-folding.
func FieldEqualFold(name, v string) *CallExpr {
	return &CallExpr{Func: FuncEqualFold, Args: []Expr{F(name), &Value{V: v}}}
}

// FieldHasPrefix returns a predicate to check that the named string
// field starts with the given prefix.
func FieldHasPrefix(name, prefix string) *CallExpr {
	return &CallExpr{Func: FuncHasPrefix, Args: []Expr{F(name), &Value{V: prefix}}}
}

// FieldHasSuffix returns a predicate to check that the named string
// field ends with the given suffix.
func FieldHasSuffix(name, suffix string) *CallExpr {
	return &CallExpr{Func: FuncHasSuffix, Args: []Expr{F(name), &Value{V: suffix}}}
}

// HasEdge returns a predicate to check that the record has an edge with
// the given name.
func HasEdge(name string) *CallExpr {
	return &CallExpr{Func: FuncHasEdge, Args: []Expr{&Edge{Name: name}}}
}

// HasEdgeWith returns a predicate to check that the record has an edge
// with the given name satisfying all given predicates.
func HasEdgeWith(name string, ps ...P) *CallExpr {
	args := make([]Expr, 0, len(ps)+1)
	args = append(args, &Edge{Name: name})
	for _, p := range ps {
		args = append(args, p)
	}
	return &CallExpr{Func: FuncHasEdge, Args: args}
}

// Fielder is implemented by typed predicates that bind to a concrete
// field once its name is known.
type Fielder interface {
	// Field binds the predicate to the field with the given name.
	Field(name string) P
}

// fieldP is the shared form of the typed predicates: a deferred
// predicate constructor applied to the field expression on binding.
type fieldP func(*Field) P

// Field implements the Fielder interface.
func (p fieldP) Field(name string) P {
	return p(&Field{Name: name})
}
