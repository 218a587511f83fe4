package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/exprfactory"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// legalCreateUserAttrs / legalSetUserAttrs / legalAccessKeyAttrs /
// legalTokenAttrs are the per-statement legal attribute keys, recovered
// from the original source's REAL_NAME/DESCRIPTION/STATE and
// DESCRIPTION/EXPIRATION_TIMESTAMP switch cases.
var (
	legalCreateUserAttrs = map[string]bool{"REAL_NAME": true, "DESCRIPTION": true, "STATE": true}
	legalSetUserAttrs    = legalCreateUserAttrs
	legalAccessKeyAttrs  = map[string]bool{"DESCRIPTION": true, "STATE": true}
	legalTokenAttrs      = map[string]bool{"DESCRIPTION": true, "EXPIRATION_TIMESTAMP": true}
)

func buildCreateUser(node navigator.Node) (request.Request, error) {
	children := node.Children()
	name, err := navigator.AnyNameText(children[2])
	if err != nil {
		return nil, err
	}
	req := &request.CreateUser{Name: name}
	if len(children) > 3 {
		attrs, err := buildAttributes(children[3], legalCreateUserAttrs, "CREATE USER")
		if err != nil {
			return nil, err
		}
		req.Attributes = attrs
	}
	return req, nil
}

func buildDropUser(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(lastChild(node))
	if err != nil {
		return nil, err
	}
	return &request.DropUser{Name: name, IfExists: ifExistsPresent(node)}, nil
}

// buildAlterUser dispatches on the shape of ALTER USER's sub-clause, built
// by parseAlterUserClause: a top-level SET attribute list, or an ACCESS
// KEY / TOKEN clause whose own leading keyword (ADD/DROP/ALTER) and child
// count pick out the concrete operation.
func buildAlterUser(node navigator.Node) (request.Request, error) {
	children := node.Children()
	userName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	clause := children[2]

	switch clause.RuleID() {
	case navigator.RuleSetUserAttributesStmt:
		attrs, err := buildAttributes(clause.Children()[1], legalSetUserAttrs, "ALTER USER SET")
		if err != nil {
			return nil, err
		}
		return &request.SetUserAttributes{Name: userName, Attributes: attrs}, nil

	case navigator.RuleUserAccessKeyClause:
		return buildAccessKeyClause(userName, clause)

	case navigator.RuleUserTokenClause:
		return buildTokenClause(userName, clause)

	default:
		line, column := navigator.CaptureTerminalPosition(clause)
		return nil, sqlerr.New(sqlerr.KindUnsupportedStatement, line, column,
			"unsupported ALTER USER clause")
	}
}

func buildAccessKeyClause(userName string, clause navigator.Node) (request.Request, error) {
	children := clause.Children()
	verb := firstChildText(clause)
	keyName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}

	switch {
	case verb == "ADD":
		keyText := navigator.UnquoteString(children[2].Text())
		return &request.AddUserAccessKey{UserName: userName, KeyName: keyName, KeyText: keyText}, nil

	case verb == "DROP":
		return &request.DropUserAccessKey{UserName: userName, KeyName: keyName}, nil

	case verb == "ALTER" && children[2].Text() == "SET":
		attrs, err := buildAttributes(children[3], legalAccessKeyAttrs, "ALTER USER ALTER ACCESS KEY")
		if err != nil {
			return nil, err
		}
		return &request.SetUserAccessKeyAttributes{UserName: userName, KeyName: keyName, Attributes: attrs}, nil

	case verb == "ALTER" && children[2].Text() == "RENAME":
		newName, err := navigator.AnyNameText(children[3])
		if err != nil {
			return nil, err
		}
		return &request.RenameUserAccessKey{UserName: userName, KeyName: keyName, NewName: newName}, nil

	default:
		line, column := navigator.CaptureTerminalPosition(clause)
		return nil, sqlerr.New(sqlerr.KindUnsupportedStatement, line, column,
			"unsupported ACCESS KEY clause")
	}
}

func buildTokenClause(userName string, clause navigator.Node) (request.Request, error) {
	children := clause.Children()
	verb := firstChildText(clause)
	tokenName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}

	switch {
	case verb == "ADD":
		req := &request.AddUserToken{UserName: userName, TokenName: tokenName}
		if len(children) > 3 {
			attrs, err := buildAttributes(children[3], legalTokenAttrs, "ALTER USER ADD TOKEN")
			if err != nil {
				return nil, err
			}
			req.Attributes = attrs
		}
		return req, nil

	case verb == "DROP":
		return &request.DropUserToken{UserName: userName, TokenName: tokenName}, nil

	case verb == "ALTER" && children[2].Text() == "SET":
		attrs, err := buildAttributes(children[3], legalTokenAttrs, "ALTER USER ALTER TOKEN")
		if err != nil {
			return nil, err
		}
		return &request.SetUserTokenAttributes{UserName: userName, TokenName: tokenName, Attributes: attrs}, nil

	case verb == "ALTER" && children[2].Text() == "RENAME":
		newName, err := navigator.AnyNameText(children[3])
		if err != nil {
			return nil, err
		}
		return &request.RenameUserToken{UserName: userName, TokenName: tokenName, NewName: newName}, nil

	default:
		line, column := navigator.CaptureTerminalPosition(clause)
		return nil, sqlerr.New(sqlerr.KindUnsupportedStatement, line, column,
			"unsupported TOKEN clause")
	}
}

func buildCheckUserToken(node navigator.Node) (request.Request, error) {
	children := node.Children()
	userName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	tokenName, err := navigator.AnyNameText(children[2])
	if err != nil {
		return nil, err
	}
	value, err := exprfactory.CreateExpression(children[3], valueContext)
	if err != nil {
		return nil, err
	}
	return &request.CheckUserToken{UserName: userName, TokenName: tokenName, Value: value}, nil
}
