package expr

// basePos is embedded in every concrete node to carry the source position
// of its leading token, used for error messages and Pos().
type basePos struct {
	line, column int
}

func (p basePos) Pos() (int, int) { return p.line, p.column }
