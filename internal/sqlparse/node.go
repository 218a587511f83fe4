// Package sqlparse implements the recursive-descent parser that turns
// tokenized SQL text into the generic rule/terminal parse tree
// internal/navigator's helpers operate over (spec.md section 1/3.5). It is
// the one package allowed to construct navigator.Node values.
package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

// node is the concrete navigator.Node implementation this package builds.
type node struct {
	terminal  bool
	rule      navigator.RuleID
	tok       navigator.TokenType
	text      string
	line, col int
	children  []navigator.Node
}

func (n *node) IsTerminal() bool             { return n.terminal }
func (n *node) RuleID() navigator.RuleID     { return n.rule }
func (n *node) TokenType() navigator.TokenType { return n.tok }
func (n *node) Text() string                 { return n.text }
func (n *node) Line() int                    { return n.line }
func (n *node) Column() int                  { return n.col }
func (n *node) Children() []navigator.Node   { return n.children }

func newRule(id navigator.RuleID, children ...navigator.Node) *node {
	line, col := 0, 0
	for _, c := range children {
		if c != nil {
			line, col = c.Line(), c.Column()
			break
		}
	}
	return &node{rule: id, children: children, line: line, col: col}
}

// newTerminal wraps a lexer token as a terminal node. Keyword tokens use
// their normalized (uppercase) value as the node text, since every
// consumer dispatches on keyword identity, not on how the source happened
// to capitalize it; every other token keeps its raw source text.
func newTerminal(t Token) *node {
	text := t.Text
	if t.Type == navigator.TokKeyword {
		text = t.Value
	}
	return &node{terminal: true, tok: t.Type, text: text, line: t.Line, col: t.Column}
}
