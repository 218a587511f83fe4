package request

import "github.com/sqlcore-engine/sqlfront/internal/expr"

// Insert is "INSERT INTO table [(col, ...)] VALUES (expr, ...), ...".
// Columns is nil when no column list was given; the rows are then not
// checked against any column count.
type Insert struct {
	Database string
	Table    string
	Columns  []string
	Rows     [][]expr.Node
}

func (*Insert) request()   {}
func (*Insert) Kind() Kind { return KindInsert }

// Assignment is one "column = expr" pair from an UPDATE's SET clause.
type Assignment struct {
	Column string
	Value  expr.Node
}

// Update is "UPDATE table SET col = expr, ... [WHERE cond]".
type Update struct {
	Target      TableRef
	Assignments []Assignment
	Where       expr.Node
}

func (*Update) request()   {}
func (*Update) Kind() Kind { return KindUpdate }

// Delete is "DELETE FROM table [WHERE cond]".
type Delete struct {
	Target TableRef
	Where  expr.Node
}

func (*Delete) request()   {}
func (*Delete) Kind() Kind { return KindDelete }
