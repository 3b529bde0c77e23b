package types

import (
	"github.com/arthur-debert/fontconf/pkg/errors"
)

// Expression is a node in a rule expression tree: a leaf Value, a matrix,
// or an operator applied to an ordered list of sub-expressions.
//
// Operator arity is deliberately not enforced by the tree shape. Every
// operator node carries a plain argument list; checking the expected child
// count is the matching engine's concern, not the parser's.
type Expression interface {
	isExpression()
}

// Value is a leaf of the expression tree. The set of kinds is closed:
// String, Double, Int, Bool, Constant and PropertyRef.
type Value interface {
	Expression
	isValue()
}

// String is a text literal from a <string> element
type String string

// Double is a floating point literal from a <double> element
type Double float64

// Int is an integer literal from an <int> element
type Int int

// Bool is a boolean literal from a <bool> element
type Bool bool

// PropertyRef reads a named property from the candidate or matching
// pattern, selected by Target, at evaluation time.
type PropertyRef struct {
	Target PropertyTarget
	Kind   PropertyKind
}

func (String) isExpression()      {}
func (Double) isExpression()      {}
func (Int) isExpression()         {}
func (Bool) isExpression()        {}
func (Constant) isExpression()    {}
func (PropertyRef) isExpression() {}

func (String) isValue()      {}
func (Double) isValue()      {}
func (Int) isValue()         {}
func (Bool) isValue()        {}
func (Constant) isValue()    {}
func (PropertyRef) isValue() {}

// Matrix is the fixed 2x2 transformation matrix literal: exactly four
// numeric sub-expressions in row-major order.
type Matrix [4]Expression

// ListExpr applies a variadic combinator to its arguments
type ListExpr struct {
	Op   ListOp
	Args []Expression
}

// UnaryExpr applies a unary operator. Args is a list for shape uniformity
// with the other operator nodes.
type UnaryExpr struct {
	Op   UnaryOp
	Args []Expression
}

// BinaryExpr applies a binary comparison or arithmetic operator
type BinaryExpr struct {
	Op   BinaryOp
	Args []Expression
}

// TernaryExpr applies a three-argument operator (if/then/else)
type TernaryExpr struct {
	Op   TernaryOp
	Args []Expression
}

func (Matrix) isExpression()      {}
func (ListExpr) isExpression()    {}
func (UnaryExpr) isExpression()   {}
func (BinaryExpr) isExpression()  {}
func (TernaryExpr) isExpression() {}

// ListOp is a variadic list combinator
type ListOp int

// List combinators
const (
	ListPlus ListOp = iota
	ListMinus
	ListTimes
	ListDivide
	ListOr
	ListAnd
)

// UnaryOp is a single-argument operator
type UnaryOp int

// Unary operators
const (
	UnaryNot UnaryOp = iota
	UnaryFloor
	UnaryCeil
	UnaryRound
	UnaryTrunc
)

// BinaryOp is a two-argument operator
type BinaryOp int

// Binary operators
const (
	BinaryEq BinaryOp = iota
	BinaryNotEq
	BinaryLess
	BinaryLessEq
	BinaryMore
	BinaryMoreEq
	BinaryContains
	BinaryNotContains
)

// TernaryOp is a three-argument operator
type TernaryOp int

// Ternary operators
const (
	TernaryIf TernaryOp = iota
)

var listOpNames = map[ListOp]string{
	ListPlus:   "plus",
	ListMinus:  "minus",
	ListTimes:  "times",
	ListDivide: "divide",
	ListOr:     "or",
	ListAnd:    "and",
}

var unaryOpNames = map[UnaryOp]string{
	UnaryNot:   "not",
	UnaryFloor: "floor",
	UnaryCeil:  "ceil",
	UnaryRound: "round",
	UnaryTrunc: "trunc",
}

var binaryOpNames = map[BinaryOp]string{
	BinaryEq:          "eq",
	BinaryNotEq:       "not_eq",
	BinaryLess:        "less",
	BinaryLessEq:      "less_eq",
	BinaryMore:        "more",
	BinaryMoreEq:      "more_eq",
	BinaryContains:    "contains",
	BinaryNotContains: "not_contains",
}

var ternaryOpNames = map[TernaryOp]string{
	TernaryIf: "if",
}

func (o ListOp) String() string    { return listOpNames[o] }
func (o UnaryOp) String() string   { return unaryOpNames[o] }
func (o BinaryOp) String() string  { return binaryOpNames[o] }
func (o TernaryOp) String() string { return ternaryOpNames[o] }

// NewOperator builds the operator expression named by an element tag.
// This is the single flat lookup replacing try-each-family fallback:
// an unrecognized name is an explicit error, not an unhandled case.
func NewOperator(name string, args []Expression) (Expression, error) {
	ctor, ok := operatorTable[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownOperator, "unknown operator: %q", name)
	}
	return ctor(args), nil
}

var operatorTable = map[string]func([]Expression) Expression{
	"plus":         func(args []Expression) Expression { return ListExpr{Op: ListPlus, Args: args} },
	"minus":        func(args []Expression) Expression { return ListExpr{Op: ListMinus, Args: args} },
	"times":        func(args []Expression) Expression { return ListExpr{Op: ListTimes, Args: args} },
	"divide":       func(args []Expression) Expression { return ListExpr{Op: ListDivide, Args: args} },
	"or":           func(args []Expression) Expression { return ListExpr{Op: ListOr, Args: args} },
	"and":          func(args []Expression) Expression { return ListExpr{Op: ListAnd, Args: args} },
	"not":          func(args []Expression) Expression { return UnaryExpr{Op: UnaryNot, Args: args} },
	"floor":        func(args []Expression) Expression { return UnaryExpr{Op: UnaryFloor, Args: args} },
	"ceil":         func(args []Expression) Expression { return UnaryExpr{Op: UnaryCeil, Args: args} },
	"round":        func(args []Expression) Expression { return UnaryExpr{Op: UnaryRound, Args: args} },
	"trunc":        func(args []Expression) Expression { return UnaryExpr{Op: UnaryTrunc, Args: args} },
	"eq":           func(args []Expression) Expression { return BinaryExpr{Op: BinaryEq, Args: args} },
	"not_eq":       func(args []Expression) Expression { return BinaryExpr{Op: BinaryNotEq, Args: args} },
	"less":         func(args []Expression) Expression { return BinaryExpr{Op: BinaryLess, Args: args} },
	"less_eq":      func(args []Expression) Expression { return BinaryExpr{Op: BinaryLessEq, Args: args} },
	"more":         func(args []Expression) Expression { return BinaryExpr{Op: BinaryMore, Args: args} },
	"more_eq":      func(args []Expression) Expression { return BinaryExpr{Op: BinaryMoreEq, Args: args} },
	"contains":     func(args []Expression) Expression { return BinaryExpr{Op: BinaryContains, Args: args} },
	"not_contains": func(args []Expression) Expression { return BinaryExpr{Op: BinaryNotContains, Args: args} },
	"if":           func(args []Expression) Expression { return TernaryExpr{Op: TernaryIf, Args: args} },
}

// IsOperator reports whether an element tag names a known operator
func IsOperator(name string) bool {
	_, ok := operatorTable[name]
	return ok
}

// lookup is the shared string-to-enum coercion used by every Parse*
// function in this package. Both parser strategies funnel attribute and
// text coercion through these, so coercion semantics cannot diverge.
func lookup[T any](table map[string]T, kind string, raw string) (T, error) {
	if v, ok := table[raw]; ok {
		return v, nil
	}
	var zero T
	return zero, errors.Newf(errors.ErrUnknownVariant, "unknown %s variant: %q", kind, raw).
		WithDetail("raw", raw)
}
