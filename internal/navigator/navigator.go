package navigator

import "strings"

// StatementCount returns the number of RuleSqlStmt occurrences under tree,
// visited in pre-order.
func StatementCount(tree Node) int {
	n := 0
	walk(tree, func(node Node) {
		if !node.IsTerminal() && node.RuleID() == RuleSqlStmt {
			n++
		}
	})
	return n
}

// FindStatement returns the index-th RuleSqlStmt subtree (0-based), or nil
// if index is out of range.
func FindStatement(tree Node, index int) Node {
	var found Node
	count := 0
	walkUntil(tree, func(node Node) bool {
		if !node.IsTerminal() && node.RuleID() == RuleSqlStmt {
			if count == index {
				found = node
				return true
			}
			count++
		}
		return false
	})
	return found
}

// FindNonTerminal returns the first descendant (including tree itself)
// whose rule id is ruleID, in pre-order, or nil.
func FindNonTerminal(tree Node, ruleID RuleID) Node {
	var found Node
	walkUntil(tree, func(node Node) bool {
		if !node.IsTerminal() && node.RuleID() == ruleID {
			found = node
			return true
		}
		return false
	})
	return found
}

// FindNonTerminalChild returns the first direct child of tree with rule id
// ruleID, or nil.
func FindNonTerminalChild(tree Node, ruleID RuleID) Node {
	for _, child := range tree.Children() {
		if !child.IsTerminal() && child.RuleID() == ruleID {
			return child
		}
	}
	return nil
}

// FindTerminal returns the first descendant terminal with token type
// tokenType, in pre-order, or nil.
func FindTerminal(tree Node, tokenType TokenType) Node {
	var found Node
	walkUntil(tree, func(node Node) bool {
		if node.IsTerminal() && node.TokenType() == tokenType {
			found = node
			return true
		}
		return false
	})
	return found
}

// FindTerminalIn restricts FindTerminal to descendants of the first
// sub-tree matching ruleID (the two-argument find_terminal overload from
// spec.md section 4.4).
func FindTerminalIn(tree Node, ruleID RuleID, tokenType TokenType) Node {
	scope := FindNonTerminal(tree, ruleID)
	if scope == nil {
		return nil
	}
	return FindTerminal(scope, tokenType)
}

// HasTerminalChild reports whether some direct child of tree, at or after
// startIndex, is a terminal with token type tokenType.
func HasTerminalChild(tree Node, tokenType TokenType, startIndex int) bool {
	return FindTerminalChild(tree, tokenType, startIndex) != nil
}

// FindTerminalChild returns the first direct child of tree, at or after
// startIndex, that is a terminal with token type tokenType, or nil.
func FindTerminalChild(tree Node, tokenType TokenType, startIndex int) Node {
	children := tree.Children()
	for i := startIndex; i < len(children); i++ {
		if children[i].IsTerminal() && children[i].TokenType() == tokenType {
			return children[i]
		}
	}
	return nil
}

// NonTerminalType returns node's rule id, or InvalidRule if node is a
// terminal.
func NonTerminalType(node Node) RuleID {
	if node == nil || node.IsTerminal() {
		return InvalidRule
	}
	return node.RuleID()
}

// TerminalType returns node's token type, or InvalidToken if node is a
// rule.
func TerminalType(node Node) TokenType {
	if node == nil || !node.IsTerminal() {
		return InvalidToken
	}
	return node.TokenType()
}

// CaptureTerminalPosition returns node's (line, column); for a rule node it
// returns the position of its first terminal descendant, or (0, 0) if it
// has none.
func CaptureTerminalPosition(node Node) (line, column int) {
	if node == nil {
		return 0, 0
	}
	if node.IsTerminal() {
		return node.Line(), node.Column()
	}
	for _, child := range node.Children() {
		if l, c := CaptureTerminalPosition(child); l != 0 || c != 0 {
			return l, c
		}
	}
	return 0, 0
}

// ExtractObjectName reads the child_index-th direct child of node as an
// object name: uppercases plain identifiers, and for a quoted identifier
// strips one layer of quotes and collapses doubled quote characters before
// uppercasing (spec.md section 4.4 — catalog names are canonicalized to
// uppercase even when quoted).
func ExtractObjectName(node Node, childIndex int) (string, error) {
	children := node.Children()
	if childIndex < 0 || childIndex >= len(children) {
		return "", newNavError(node, "object name child index %d out of range", childIndex)
	}
	child := children[childIndex]
	if !child.IsTerminal() {
		return "", newNavError(child, "expected a terminal for an object name")
	}
	switch child.TokenType() {
	case TokQuotedIdentifier:
		return strings.ToUpper(unquoteIdentifier(child.Text())), nil
	case TokIdentifier, TokKeyword:
		return strings.ToUpper(child.Text()), nil
	default:
		return "", newNavError(child, "unexpected token kind for an object name")
	}
}

func unquoteIdentifier(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

// UnquoteString strips bounding single quotes from a SQL string literal's
// raw text and collapses doubled single quotes into one.
func UnquoteString(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}

// AnyNameText resolves the grammar's any_name production — an identifier, a
// string literal, a keyword used as a name, or a parenthesized variant of
// any of those — to its canonical text. Identifiers and keywords are
// uppercased; string literals are unquoted but not case-changed.
func AnyNameText(node Node) (string, error) {
	n := unwrapParens(node)
	if n.IsTerminal() {
		switch n.TokenType() {
		case TokQuotedIdentifier:
			return strings.ToUpper(unquoteIdentifier(n.Text())), nil
		case TokIdentifier, TokKeyword:
			return strings.ToUpper(n.Text()), nil
		case TokStringLiteral:
			return UnquoteString(n.Text()), nil
		default:
			return "", newNavError(n, "unexpected token kind in any_name")
		}
	}
	if !n.IsTerminal() && n.RuleID() == RuleAnyName && len(n.Children()) == 1 {
		return AnyNameText(n.Children()[0])
	}
	return "", newNavError(n, "unrecognized any_name shape")
}

func unwrapParens(node Node) Node {
	for !node.IsTerminal() && len(node.Children()) == 3 {
		children := node.Children()
		if children[0].IsTerminal() && children[0].TokenType() == TokLParen &&
			children[2].IsTerminal() && children[2].TokenType() == TokRParen {
			node = children[1]
			continue
		}
		break
	}
	return node
}

func walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children() {
		walk(child, visit)
	}
}

// walkUntil visits node and its descendants in pre-order, stopping as soon
// as visit returns true.
func walkUntil(node Node, visit func(Node) bool) bool {
	if node == nil {
		return false
	}
	if visit(node) {
		return true
	}
	for _, child := range node.Children() {
		if walkUntil(child, visit) {
			return true
		}
	}
	return false
}
