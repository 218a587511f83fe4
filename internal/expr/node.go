package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// EvalContext is the single capability every node needs to resolve a column
// reference: given a dataset table/column index pair, return the current
// value and its declared type (spec.md section 3.5's navigator/§4.3's
// evaluation context). Executors supply a concrete context backed by the
// storage engine; EmptyContext below fails on every access, for tests and
// for factories that build expressions without a live dataset.
type EvalContext interface {
	Column(tableIndex, columnIndex int) (variant.Variant, coltype.Type, error)
}

// emptyContext implements EvalContext by rejecting every column access.
type emptyContext struct{}

// EmptyContext is an EvalContext with no resolvable columns.
var EmptyContext EvalContext = emptyContext{}

func (emptyContext) Column(tableIndex, columnIndex int) (variant.Variant, coltype.Type, error) {
	return variant.Variant{}, coltype.Unknown, &UnresolvedColumnError{TableIndex: tableIndex, ColumnIndex: columnIndex}
}

// UnresolvedColumnError is returned by EmptyContext and by any context that
// cannot resolve a requested column.
type UnresolvedColumnError struct {
	TableIndex, ColumnIndex int
}

func (e *UnresolvedColumnError) Error() string {
	return "unresolved column reference"
}

// Node is the contract every concrete expression type implements. A Node
// owns its children exclusively and recursively; cloning and serialization
// always walk the full owned subtree.
type Node interface {
	// Type returns the wire-stable discriminant.
	Type() Type

	// Pos returns the source position of the node's leading token, used in
	// error messages when validation or evaluation fails.
	Pos() (line, column int)

	// ResultValueType infers the SQL value type the node evaluates to.
	ResultValueType(ctx EvalContext) (coltype.Type, error)

	// ColumnDataType is an alias of ResultValueType for column-reference
	// nodes and otherwise defers to it; kept distinct because column
	// references query the context's declared type rather than inferring
	// one structurally.
	ColumnDataType(ctx EvalContext) (coltype.Type, error)

	// ExpressionText renders the node (and its subtree) for error messages.
	ExpressionText() string

	// Validate walks children first, then enforces node-specific rules.
	Validate(ctx EvalContext) error

	// Evaluate computes the node's Variant value under ctx.
	Evaluate(ctx EvalContext) (variant.Variant, error)

	// Clone returns a structurally-equal, structurally-disjoint copy.
	Clone() Node

	// Equals reports structural equality: same discriminant, equal leaves,
	// and recursively equal children.
	Equals(other Node) bool

	// SerializedSize returns the exact byte length Serialize will write.
	SerializedSize() int

	// Serialize appends the node's wire form to buf.
	Serialize(buf *bytes.Buffer)

	// Dump renders an indented textual tree, depth levels deep already.
	Dump(depth int) string
}

// depthGuard bounds the recursion of Deserialize, which rebuilds a tree from
// bytes (clone, validate, evaluate, serialize all recurse once per child and
// so are already bounded by the tree's depth). Trees built from a parse tree
// are bounded by exprfactory, which checks MaxDepth itself.
func depthGuard(depth int) bool {
	return depth < MaxDepth
}
