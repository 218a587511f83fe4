package navigator

// Node is the uniform shape every parse-tree node exposes: it is either a
// rule (non-terminal) or a terminal (token), never both (spec.md section
// 3.5). internal/sqlparse is the only package that constructs Nodes; every
// other package only reads them through this interface.
type Node interface {
	IsTerminal() bool
	RuleID() RuleID       // valid only when !IsTerminal()
	TokenType() TokenType // valid only when IsTerminal()
	Text() string
	Line() int
	Column() int
	Children() []Node
}
