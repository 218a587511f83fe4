package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
)

// buildRollback inherits the shared-name-slot quirk documented on
// request.RollbackTransaction: whichever trailing name parseRollback
// captured (transaction name or savepoint name) lands in the same field.
func buildRollback(node navigator.Node) (request.Request, error) {
	last := lastChild(node)
	if last.IsTerminal() {
		return &request.RollbackTransaction{}, nil
	}
	name, err := navigator.AnyNameText(last)
	if err != nil {
		return nil, err
	}
	return &request.RollbackTransaction{Name: name, HasName: true}, nil
}

func buildSavepoint(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(lastChild(node))
	if err != nil {
		return nil, err
	}
	return &request.Savepoint{Name: name}, nil
}

func buildRelease(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(lastChild(node))
	if err != nil {
		return nil, err
	}
	return &request.Release{Name: name}, nil
}
