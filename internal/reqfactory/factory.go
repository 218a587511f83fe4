// Package reqfactory implements create_request (spec.md section 4.6): the
// dispatcher that turns a RuleSqlStmt subtree from internal/sqlparse into a
// concrete internal/request record, normalizing identifiers, validating
// attribute lists and column constraints, and routing every clause's
// expression subtrees through internal/exprfactory.
package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/exprfactory"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// valueContext is used for every attribute value, column default, INSERT
// VALUES expression, UPDATE SET value, LIMIT/OFFSET count, and CHECK USER
// TOKEN value: none of these may reference a column.
var valueContext = exprfactory.Context{AllowColumnExpressions: false}

// conditionContext is used for WHERE clauses, result-column expressions and
// column CHECK constraints, the places a bare column name is meaningful.
var conditionContext = exprfactory.Context{AllowColumnExpressions: true}

// CreateRequest dispatches on the rule id of stmt's single statement node
// (stmt must be a RuleSqlStmt wrapper, as produced by internal/sqlparse's
// statement list) and builds the request record it denotes.
func CreateRequest(stmt navigator.Node) (request.Request, error) {
	if navigator.NonTerminalType(stmt) != navigator.RuleSqlStmt {
		line, column := navigator.CaptureTerminalPosition(stmt)
		return nil, sqlerr.New(sqlerr.KindParseNavigationError, line, column,
			"expected a RuleSqlStmt node")
	}
	return buildStatement(stmt.Children()[0])
}

func buildStatement(node navigator.Node) (request.Request, error) {
	switch node.RuleID() {
	case navigator.RuleCreateDatabaseStmt:
		return buildCreateDatabase(node)
	case navigator.RuleDropDatabaseStmt:
		return buildDropDatabase(node)
	case navigator.RuleRenameDatabaseStmt:
		return buildRenameDatabase(node)
	case navigator.RuleSetDatabaseAttributesStmt:
		return buildSetDatabaseAttributes(node)
	case navigator.RuleUseDatabaseStmt:
		return buildUseDatabase(node)
	case navigator.RuleAttachDatabaseStmt:
		return buildAttachDatabase(node)
	case navigator.RuleDetachDatabaseStmt:
		return buildDetachDatabase(node)

	case navigator.RuleCreateTableStmt:
		return buildCreateTable(node)
	case navigator.RuleDropTableStmt:
		return buildDropTable(node)
	case navigator.RuleRenameTableStmt:
		return buildRenameTable(node)
	case navigator.RuleSetTableAttributesStmt:
		return buildSetTableAttributes(node)
	case navigator.RuleAlterTableStmt:
		return buildAlterTable(node)

	case navigator.RuleCreateIndexStmt:
		return buildCreateIndex(node)
	case navigator.RuleDropIndexStmt:
		return buildDropIndex(node)

	case navigator.RuleCreateUserStmt:
		return buildCreateUser(node)
	case navigator.RuleDropUserStmt:
		return buildDropUser(node)
	case navigator.RuleAlterUserStmt:
		return buildAlterUser(node)
	case navigator.RuleCheckUserTokenStmt:
		return buildCheckUserToken(node)

	case navigator.RuleGrantStmt:
		return buildGrant(node)
	case navigator.RuleRevokeStmt:
		return buildRevoke(node)
	case navigator.RuleShowPermissionsStmt:
		return buildShowPermissions(node)
	case navigator.RuleShowDatabasesStmt:
		return &request.ShowDatabases{}, nil
	case navigator.RuleShowTablesStmt:
		return &request.ShowTables{}, nil
	case navigator.RuleDescribeTableStmt:
		return buildDescribeTable(node)

	case navigator.RuleSelectStmt:
		return buildSelect(node)
	case navigator.RuleInsertStmt:
		return buildInsert(node)
	case navigator.RuleUpdateStmt:
		return buildUpdate(node)
	case navigator.RuleDeleteStmt:
		return buildDelete(node)

	case navigator.RuleBeginStmt:
		return &request.BeginTransaction{}, nil
	case navigator.RuleCommitStmt:
		return &request.CommitTransaction{}, nil
	case navigator.RuleRollbackStmt:
		return buildRollback(node)
	case navigator.RuleSavepointStmt:
		return buildSavepoint(node)
	case navigator.RuleReleaseStmt:
		return buildRelease(node)

	default:
		line, column := navigator.CaptureTerminalPosition(node)
		return nil, sqlerr.New(sqlerr.KindUnsupportedStatement, line, column,
			"unsupported statement shape")
	}
}

// buildAttributes interprets a RuleAttributeList node's children (each a
// RuleAttribute of NAME, '=', value), rejecting any key not in legal.
func buildAttributes(listNode navigator.Node, legal map[string]bool, what string) ([]request.Attribute, error) {
	var attrs []request.Attribute
	for _, attrNode := range listNode.Children() {
		children := attrNode.Children()
		name, err := navigator.AnyNameText(children[0])
		if err != nil {
			return nil, err
		}
		if !legal[name] {
			line, column := navigator.CaptureTerminalPosition(children[0])
			return nil, sqlerr.New(sqlerr.KindInvalidAttribute, line, column,
				"%s: unsupported attribute %q", what, name)
		}
		val, err := exprfactory.CreateExpression(children[2], valueContext)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, request.Attribute{Name: name, Value: val})
	}
	return attrs, nil
}

// qualifiedName splits a RuleQualifiedTableName node into (database, name),
// database empty when only one part was written.
func qualifiedName(node navigator.Node) (database, name string, err error) {
	children := node.Children()
	if len(children) == 2 {
		database, err = navigator.AnyNameText(children[0])
		if err != nil {
			return "", "", err
		}
		name, err = navigator.AnyNameText(children[1])
		if err != nil {
			return "", "", err
		}
		return database, name, nil
	}
	name, err = navigator.AnyNameText(children[0])
	if err != nil {
		return "", "", err
	}
	return "", name, nil
}

// tableRef interprets a RuleTableOrSubquery node: a RuleQualifiedTableName
// child plus an optional AS alias.
func tableRef(node navigator.Node) (request.TableRef, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[0])
	if err != nil {
		return request.TableRef{}, err
	}
	ref := request.TableRef{Database: database, Table: table}
	if len(children) == 3 {
		alias, err := navigator.AnyNameText(children[2])
		if err != nil {
			return request.TableRef{}, err
		}
		ref.Alias = alias
	}
	return ref, nil
}

// ifExistsPresent reports whether node carries an IF [NOT] EXISTS clause,
// detected by terminal presence rather than position (spec.md section 4.6).
func ifExistsPresent(node navigator.Node) bool {
	return hasKeywordChild(node, "IF")
}

func hasKeywordChild(node navigator.Node, kw string) bool {
	for _, c := range node.Children() {
		if c.IsTerminal() && c.TokenType() == navigator.TokKeyword && c.Text() == kw {
			return true
		}
	}
	return false
}

// intLiteral evaluates a RuleSignedNumber node to an int64, used for
// LIMIT/OFFSET counts.
func intLiteral(node navigator.Node) (int64, error) {
	val, err := exprfactory.CreateExpression(node, valueContext)
	if err != nil {
		return 0, err
	}
	c, ok := val.(*expr.Constant)
	if !ok {
		line, column := navigator.CaptureTerminalPosition(node)
		return 0, sqlerr.New(sqlerr.KindInvalidConstant, line, column, "expected an integer literal")
	}
	return c.Value.AsInt64(), nil
}

func lastChild(node navigator.Node) navigator.Node {
	children := node.Children()
	return children[len(children)-1]
}

func firstChildText(node navigator.Node) string {
	children := node.Children()
	if len(children) == 0 || !children[0].IsTerminal() {
		return ""
	}
	return children[0].Text()
}
