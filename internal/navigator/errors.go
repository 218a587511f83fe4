package navigator

import "github.com/sqlcore-engine/sqlfront/internal/sqlerr"

func newNavError(node Node, format string, args ...any) error {
	line, column := CaptureTerminalPosition(node)
	return sqlerr.New(sqlerr.KindParseNavigationError, line, column, format, args...)
}
