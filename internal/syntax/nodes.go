package syntax

import "github.com/you-not-fish/alloy/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// Every alloy construct is an expression. All nodes implement the Node
// interface; expression nodes also carry the type assigned by the checker.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span // bytes of source covered by the node
	SetSpan(Span)
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
//
// Type returns types.NoType until the node has been checked. The checker
// does not annotate its input; it annotates copies.
type Expr interface {
	Node
	Type() types.TypeID
	SetType(types.TypeID)
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	span Span
}

func (n *node) Span() Span { return n.span }
func (n *node) aNode()     {}

// SetSpan sets the source range of the node.
func (n *node) SetSpan(s Span) { n.span = s }

// expr is embedded in all expression nodes.
type expr struct {
	node
	typ types.TypeID
}

func (x *expr) Type() types.TypeID     { return x.typ }
func (x *expr) SetType(t types.TypeID) { x.typ = t }
func (*expr) aExpr()                   {}

// ----------------------------------------------------------------------------
// Files

// File is a parsed source file: its top-level expressions in order.
type File struct {
	node
	Name  string // source name
	Exprs []Expr
}

// Ident is a name in binding position: the name introduced by a
// declaration or assigned to, or a type name. It is not an expression.
type Ident struct {
	Value string
	Span  Span
}

// ----------------------------------------------------------------------------
// Literals and names

// IntLit represents an integer literal: 42, 1_000
type IntLit struct {
	expr
	Value int64
}

// FloatLit represents a float literal: 3.14, .5
type FloatLit struct {
	expr
	Value float64
}

// BoolLit represents true or false.
type BoolLit struct {
	expr
	Value bool
}

// Name represents a variable reference.
type Name struct {
	expr
	Value string
}

// ----------------------------------------------------------------------------
// Operations

// PrefixExpr represents a unary operation: !X
type PrefixExpr struct {
	expr
	Op PrefixOp
	X  Expr
}

// InfixExpr represents a binary operation: X Op Y
type InfixExpr struct {
	expr
	Op InfixOp
	X  Expr
	Y  Expr
}

// BlockExpr represents { Exprs... }. Its value is the value of the last
// expression, or Unit when empty.
type BlockExpr struct {
	expr
	Exprs []Expr
}

// ----------------------------------------------------------------------------
// Bindings

// VarDecl represents a variable declaration.
//
//	name: value           immutable, inferred type
//	name := value         mutable, inferred type
//	name Type: value      immutable, explicit type
//	name Type = value     mutable, explicit type
type VarDecl struct {
	expr
	Name     Ident
	TypeName *Ident // explicit type; nil if inferred
	Value    Expr
	Mutable  bool
}

// AssignExpr represents an assignment: name = value
type AssignExpr struct {
	expr
	Name  Ident
	Value Expr
}

// TypeDecl represents a nominal type declaration: type Name Parent
type TypeDecl struct {
	expr
	Name   Ident
	Parent Ident
}

// ----------------------------------------------------------------------------
// Calls

// CallExpr represents a function call: name(Args...)
type CallExpr struct {
	expr
	Name Ident
	Args []Expr
}

// MethodCallExpr represents a method call: Recv.name(Args...)
type MethodCallExpr struct {
	expr
	Recv Expr
	Name Ident
	Args []Expr
}

// ----------------------------------------------------------------------------
// Operators

// PrefixOp is a unary operator.
type PrefixOp uint8

const (
	Not PrefixOp = iota // !
)

func (op PrefixOp) String() string {
	if op == Not {
		return "!"
	}
	return "?"
}

// InfixOp is a binary operator.
type InfixOp uint8

const (
	Add InfixOp = iota // +
	Sub                // -
	Mul                // *
	Div                // /
	Pow                // ^
	Lss                // <
	Leq                // <=
	Gtr                // >
	Geq                // >=
	Eql                // ==
	Neq                // !=
)

var infixOpNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Pow: "^",
	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",
	Eql: "==",
	Neq: "!=",
}

func (op InfixOp) String() string {
	if int(op) < len(infixOpNames) {
		return infixOpNames[op]
	}
	return "?"
}

// IsArithmetic reports whether op is + - * / or ^.
func (op InfixOp) IsArithmetic() bool { return op <= Pow }

// IsComparison reports whether op is < <= > or >=.
func (op InfixOp) IsComparison() bool { return op >= Lss && op <= Geq }

// IsEquality reports whether op is == or !=.
func (op InfixOp) IsEquality() bool { return op == Eql || op == Neq }

// infixOps maps operator tokens to binary operators.
var infixOps = map[Kind]InfixOp{
	_Add: Add,
	_Sub: Sub,
	_Mul: Mul,
	_Div: Div,
	_Pow: Pow,
	_Lss: Lss,
	_Leq: Leq,
	_Gtr: Gtr,
	_Geq: Geq,
	_Eql: Eql,
	_Neq: Neq,
}
