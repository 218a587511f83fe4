package request

import "github.com/sqlcore-engine/sqlfront/internal/expr"

// ResultColumn is one entry of a SELECT result-column list: "*",
// "table.*", or "expr [AS alias]".
type ResultColumn struct {
	Star      bool
	StarTable string
	Expr      expr.Node
	Alias     string
}

// OrderByItem is reserved for a future ORDER BY implementation; Select's
// OrderBy field is always empty since the grammar does not parse it
// (spec.md section 4.6, "ordering/grouping/having slots are reserved in
// the record but left empty").
type OrderByItem struct {
	Expr       expr.Node
	Descending bool
}

// Select is a single-SELECT-core query: source-table list, result
// expressions, optional WHERE, optional LIMIT/OFFSET. Compound queries and
// ORDER BY/GROUP BY/HAVING are out of scope; their slots exist for forward
// compatibility but are always empty.
type Select struct {
	From        []TableRef
	Columns     []ResultColumn
	Where       expr.Node
	HasLimit    bool
	Limit       int64
	HasOffset   bool
	Offset      int64
	OrderBy     []OrderByItem
	GroupBy     []expr.Node
	Having      expr.Node
}

func (*Select) request()   {}
func (*Select) Kind() Kind { return KindSelect }
