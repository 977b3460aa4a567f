package querylanguage

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"
	"time"

	"github.com/syssam/grafo/dialect"
)

// ErrUnsupported is wrapped by evaluation errors for expressions that
// cannot be decided against a property map, such as has_edge.
var ErrUnsupported = errors.New("querylanguage: unsupported expression")

// EvalError reports an expression the evaluator could not decide
// against the given property map.
type EvalError struct {
	Expr    string // textual form of the offending expression
	Message string
}

// Error returns the error string.
func (e *EvalError) Error() string {
	return fmt.Sprintf("querylanguage: cannot evaluate %s: %s", e.Expr, e.Message)
}

// Is reports whether the target matches the sentinel error for EvalError.
func (e *EvalError) Is(target error) bool {
	return target == ErrUnsupported
}

// IsUnsupported returns true if the error reports an expression the
// evaluator cannot decide.
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var e *EvalError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupported)
}

// Eval evaluates the predicate against a vertex property map. A field
// expression reads the property with the field's name; an absent
// property evaluates as nil. Comparisons order mixed numeric kinds,
// strings, times and byte slices; everything else compares for
// equality only. "not in" is the negation of "in", so an absent field
// is not in any list. Edge predicates cannot be decided against a
// property map and report an error satisfying IsUnsupported.
func Eval(p P, properties map[string]any) (bool, error) {
	switch n := p.(type) {
	case *BinaryExpr:
		return evalBinary(n, properties)
	case *UnaryExpr:
		return evalUnary(n, properties)
	case *NaryExpr:
		return evalNary(n, properties)
	case *CallExpr:
		return evalCall(n, properties)
	default:
		return false, &EvalError{Expr: p.String(), Message: fmt.Sprintf("unknown predicate %T", p)}
	}
}

// Filter narrows a vertex sequence to the vertices whose property maps
// satisfy the predicate. Evaluation failures are yielded in place of a
// vertex; the consumer decides whether to continue.
func Filter(seq iter.Seq2[dialect.Vertex, error], p P) iter.Seq2[dialect.Vertex, error] {
	return func(yield func(dialect.Vertex, error) bool) {
		for v, err := range seq {
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			ok, err := Eval(p, v.Properties())
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if ok && !yield(v, nil) {
				return
			}
		}
	}
}

func evalBinary(n *BinaryExpr, properties map[string]any) (bool, error) {
	switch n.Op {
	case OpAnd, OpOr:
		x, okx := n.X.(P)
		y, oky := n.Y.(P)
		if !okx || !oky {
			return false, &EvalError{Expr: n.String(), Message: "logical operand is not a predicate"}
		}
		v, err := Eval(x, properties)
		if err != nil {
			return false, err
		}
		if n.Op == OpAnd && !v {
			return false, nil
		}
		if n.Op == OpOr && v {
			return true, nil
		}
		return Eval(y, properties)
	case OpEQ, OpNEQ:
		x, y, err := operands(n, properties)
		if err != nil {
			return false, err
		}
		eq := equalValues(x, y)
		if n.Op == OpNEQ {
			eq = !eq
		}
		return eq, nil
	case OpGT, OpGTE, OpLT, OpLTE:
		x, y, err := operands(n, properties)
		if err != nil {
			return false, err
		}
		c, ok := orderValues(x, y)
		if !ok {
			return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("cannot order %T and %T", x, y)}
		}
		switch n.Op {
		case OpGT:
			return c > 0, nil
		case OpGTE:
			return c >= 0, nil
		case OpLT:
			return c < 0, nil
		default:
			return c <= 0, nil
		}
	case OpIn, OpNotIn:
		x, y, err := operands(n, properties)
		if err != nil {
			return false, err
		}
		list := reflect.ValueOf(y)
		if y == nil || (list.Kind() != reflect.Slice && list.Kind() != reflect.Array) {
			return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("%T is not a list", y)}
		}
		var found bool
		for i := 0; i < list.Len() && !found; i++ {
			found = equalValues(x, list.Index(i).Interface())
		}
		if n.Op == OpNotIn {
			found = !found
		}
		return found, nil
	default:
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("operator %q is not binary", n.Op)}
	}
}

func evalUnary(n *UnaryExpr, properties map[string]any) (bool, error) {
	if n.Op != OpNot {
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("operator %q is not unary", n.Op)}
	}
	x, ok := n.X.(P)
	if !ok {
		return false, &EvalError{Expr: n.String(), Message: "negated operand is not a predicate"}
	}
	v, err := Eval(x, properties)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func evalNary(n *NaryExpr, properties map[string]any) (bool, error) {
	if n.Op != OpAnd && n.Op != OpOr {
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("operator %q is not n-ary", n.Op)}
	}
	for _, x := range n.Xs {
		v, err := Eval(x, properties)
		if err != nil {
			return false, err
		}
		if n.Op == OpAnd && !v {
			return false, nil
		}
		if n.Op == OpOr && v {
			return true, nil
		}
	}
	return n.Op == OpAnd, nil
}

func evalCall(n *CallExpr, properties map[string]any) (bool, error) {
	if n.Func == FuncHasEdge {
		return false, &EvalError{Expr: n.String(), Message: "property maps carry no edges"}
	}
	if len(n.Args) != 2 {
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("%s takes a field and a string", n.Func)}
	}
	x, err := operand(n.Args[0], properties)
	if err != nil {
		return false, err
	}
	y, err := operand(n.Args[1], properties)
	if err != nil {
		return false, err
	}
	s, okx := x.(string)
	arg, oky := y.(string)
	if !okx || !oky {
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("%s requires string operands, got %T and %T", n.Func, x, y)}
	}
	switch n.Func {
	case FuncContains:
		return strings.Contains(s, arg), nil
	case FuncContainsFold:
		return strings.Contains(strings.ToLower(s), strings.ToLower(arg)), nil
	case FuncEqualFold:
		return strings.EqualFold(s, arg), nil
	case FuncHasPrefix:
		return strings.HasPrefix(s, arg), nil
	case FuncHasSuffix:
		return strings.HasSuffix(s, arg), nil
	default:
		return false, &EvalError{Expr: n.String(), Message: fmt.Sprintf("unknown function %q", n.Func)}
	}
}

// operands resolves both sides of a comparison.
func operands(n *BinaryExpr, properties map[string]any) (x, y any, err error) {
	if x, err = operand(n.X, properties); err != nil {
		return nil, nil, err
	}
	if y, err = operand(n.Y, properties); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// operand resolves a leaf expression to a concrete value. A field reads
// the property with its name; an absent property resolves to nil.
func operand(x Expr, properties map[string]any) (any, error) {
	switch x := x.(type) {
	case *Field:
		return properties[x.Name], nil
	case *Value:
		if x == nil {
			return nil, nil
		}
		return x.V, nil
	default:
		return nil, &EvalError{Expr: x.String(), Message: "operand is neither a field nor a value"}
	}
}

// equalValues reports loose equality between two property values.
// Ordered values compare by order, byte slices by content, everything
// else falls back to reflect.DeepEqual.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if c, ok := orderValues(a, b); ok {
		return c == 0
	}
	if ab, ok := a.([]byte); ok {
		if bb, ok := b.([]byte); ok {
			return bytes.Equal(ab, bb)
		}
	}
	return reflect.DeepEqual(a, b)
}

// orderValues compares two ordered property values. The second return
// is false when the pair has no defined order.
func orderValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), true
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), true
		}
	case []byte:
		if bv, ok := b.([]byte); ok {
			return bytes.Compare(av, bv), true
		}
	}
	return orderNumeric(a, b)
}

// orderNumeric compares two numeric values across kinds. Integers of
// the same signedness compare exactly; comparisons involving floats go
// through float64.
func orderNumeric(a, b any) (int, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := numClassOf(ra), numClassOf(rb)
	if ka == numNone || kb == numNone {
		return 0, false
	}
	switch {
	case ka == numFloat || kb == numFloat:
		return cmp.Compare(floatOf(ra, ka), floatOf(rb, kb)), true
	case ka == numInt && kb == numInt:
		return cmp.Compare(ra.Int(), rb.Int()), true
	case ka == numUint && kb == numUint:
		return cmp.Compare(ra.Uint(), rb.Uint()), true
	// Mixed signedness: a negative signed value is below any unsigned
	// value; the rest compares in uint64 space.
	case ka == numInt:
		if ra.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(ra.Int()), rb.Uint()), true
	default:
		if rb.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(ra.Uint(), uint64(rb.Int())), true
	}
}

type numClass int

const (
	numNone numClass = iota
	numInt
	numUint
	numFloat
)

func numClassOf(v reflect.Value) numClass {
	if !v.IsValid() {
		return numNone
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numUint
	case reflect.Float32, reflect.Float64:
		return numFloat
	default:
		return numNone
	}
}

func floatOf(v reflect.Value, c numClass) float64 {
	switch c {
	case numInt:
		return float64(v.Int())
	case numUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
