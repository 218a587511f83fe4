package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/exprfactory"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// legalCreateDatabaseAttrs / legalSetDatabaseAttrs / legalSetTableAttrs are
// the per-statement legal attribute keys (spec.md section 4.6), recovered
// from the original source's CIPHER_ID/CIPHER_KEY_SEED, DESCRIPTION, and
// NEXT_TRID switch cases.
var (
	legalCreateDatabaseAttrs = map[string]bool{"CIPHER_ID": true, "CIPHER_KEY_SEED": true}
	legalSetDatabaseAttrs    = map[string]bool{"DESCRIPTION": true}
	legalSetTableAttrs       = map[string]bool{"NEXT_TRID": true}
)

func buildCreateDatabase(node navigator.Node) (request.Request, error) {
	children := node.Children()
	name, err := navigator.AnyNameText(children[2])
	if err != nil {
		return nil, err
	}
	req := &request.CreateDatabase{Name: name}
	if len(children) > 3 {
		attrs, err := buildAttributes(children[3], legalCreateDatabaseAttrs, "CREATE DATABASE")
		if err != nil {
			return nil, err
		}
		req.Attributes = attrs
	}
	return req, nil
}

func buildDropDatabase(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(lastChild(node))
	if err != nil {
		return nil, err
	}
	return &request.DropDatabase{Name: name, IfExists: ifExistsPresent(node)}, nil
}

func buildRenameDatabase(node navigator.Node) (request.Request, error) {
	children := node.Children()
	name, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	newName, err := navigator.AnyNameText(children[2])
	if err != nil {
		return nil, err
	}
	return &request.RenameDatabase{Name: name, NewName: newName}, nil
}

func buildSetDatabaseAttributes(node navigator.Node) (request.Request, error) {
	children := node.Children()
	name, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	attrs, err := buildAttributes(children[2], legalSetDatabaseAttrs, "SET DATABASE")
	if err != nil {
		return nil, err
	}
	return &request.SetDatabaseAttributes{Name: name, Attributes: attrs}, nil
}

func buildUseDatabase(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(node.Children()[1])
	if err != nil {
		return nil, err
	}
	return &request.UseDatabase{Name: name}, nil
}

func buildAttachDatabase(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(node.Children()[1])
	if err != nil {
		return nil, err
	}
	return &request.AttachDatabase{Name: name}, nil
}

func buildDetachDatabase(node navigator.Node) (request.Request, error) {
	name, err := navigator.AnyNameText(node.Children()[1])
	if err != nil {
		return nil, err
	}
	return &request.DetachDatabase{Name: name}, nil
}

func buildCreateTable(node navigator.Node) (request.Request, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[2])
	if err != nil {
		return nil, err
	}
	req := &request.CreateTable{Database: database, Table: table}
	for _, colNode := range children[3:] {
		col, err := buildColumnDefinition(colNode)
		if err != nil {
			return nil, err
		}
		req.Columns = append(req.Columns, col)
	}
	return req, nil
}

// buildColumnDefinition interprets a RuleColumnDef node: name, type, then
// zero or more RuleColumnConstraint children. PRIMARY KEY is rejected
// outright rather than silently dropped (spec.md section 4.6).
func buildColumnDefinition(node navigator.Node) (request.ColumnDefinition, error) {
	children := node.Children()
	name, err := navigator.AnyNameText(children[0])
	if err != nil {
		return request.ColumnDefinition{}, err
	}
	typeName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return request.ColumnDefinition{}, err
	}
	dataType, ok := coltype.Lookup(typeName)
	if !ok {
		line, column := navigator.CaptureTerminalPosition(children[1])
		return request.ColumnDefinition{}, sqlerr.New(sqlerr.KindUnknownDataType, line, column,
			"unknown data type %q", typeName)
	}
	col := request.ColumnDefinition{Name: name, DataType: dataType.String()}
	for _, c := range children[2:] {
		if err := applyColumnConstraint(c, &col.Constraints); err != nil {
			return request.ColumnDefinition{}, err
		}
	}
	return col, nil
}

func applyColumnConstraint(node navigator.Node, c *request.ColumnConstraints) error {
	children := node.Children()
	kw := children[0].Text()
	switch kw {
	case "NOT":
		c.NotNull = true
	case "NULL":
		c.NotNull = false
	case "DEFAULT":
		val, err := exprfactory.CreateExpression(children[1], valueContext)
		if err != nil {
			return err
		}
		c.HasDefault = true
		c.Default = val
	case "UNIQUE":
		c.Unique = true
	case "PRIMARY":
		line, column := navigator.CaptureTerminalPosition(node)
		return sqlerr.New(sqlerr.KindUnsupportedConstraint, line, column,
			"PRIMARY KEY column constraints are not supported")
	case "COLLATE":
		name, err := navigator.AnyNameText(children[1])
		if err != nil {
			return err
		}
		c.HasCollate = true
		c.Collate = name
	case "CHECK":
		// Unlike DEFAULT, a CHECK expression is evaluated against the row
		// being written and routinely references its own or other columns
		// (e.g. CHECK (qty > 0)), so it needs conditionContext rather than
		// the column-free valueContext every other column constraint uses.
		val, err := exprfactory.CreateExpression(children[1], conditionContext)
		if err != nil {
			return err
		}
		c.HasCheck = true
		c.Check = val
	case "REFERENCES":
		table, err := navigator.AnyNameText(children[1])
		if err != nil {
			return err
		}
		c.References = true
		c.RefTable = table
		if len(children) > 2 {
			col, err := navigator.AnyNameText(children[2])
			if err != nil {
				return err
			}
			c.HasRefColumn = true
			c.RefColumn = col
		}
	default:
		line, column := navigator.CaptureTerminalPosition(node)
		return sqlerr.New(sqlerr.KindUnsupportedConstraint, line, column,
			"unsupported column constraint %q", kw)
	}
	return nil
}

func buildDropTable(node navigator.Node) (request.Request, error) {
	tableNode := navigator.FindNonTerminalChild(node, navigator.RuleQualifiedTableName)
	database, table, err := qualifiedName(tableNode)
	if err != nil {
		return nil, err
	}
	return &request.DropTable{Database: database, Table: table, IfExists: ifExistsPresent(node)}, nil
}

func buildRenameTable(node navigator.Node) (request.Request, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[1])
	if err != nil {
		return nil, err
	}
	_, newTable, err := qualifiedName(children[2])
	if err != nil {
		return nil, err
	}
	return &request.RenameTable{Database: database, Table: table, NewName: newTable}, nil
}

func buildSetTableAttributes(node navigator.Node) (request.Request, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[1])
	if err != nil {
		return nil, err
	}
	attrs, err := buildAttributes(children[2], legalSetTableAttrs, "ALTER TABLE SET")
	if err != nil {
		return nil, err
	}
	return &request.SetTableAttributes{Database: database, Table: table, Attributes: attrs}, nil
}

// buildAlterTable dispatches on the kind of clause parseAlterTableClause
// produced: ADD/DROP/RENAME/ALTER COLUMN.
func buildAlterTable(node navigator.Node) (request.Request, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[1])
	if err != nil {
		return nil, err
	}
	clause := children[2]
	switch clause.RuleID() {
	case navigator.RuleAddColumnClause:
		col, err := buildColumnDefinition(clause.Children()[1])
		if err != nil {
			return nil, err
		}
		return &request.AddColumn{Database: database, Table: table, Column: col}, nil

	case navigator.RuleDropColumnClause:
		colName, err := navigator.AnyNameText(clause.Children()[1])
		if err != nil {
			return nil, err
		}
		return &request.DropColumn{Database: database, Table: table, Column: colName}, nil

	case navigator.RuleRenameColumnClause:
		colName, err := navigator.AnyNameText(clause.Children()[1])
		if err != nil {
			return nil, err
		}
		newName, err := navigator.AnyNameText(clause.Children()[2])
		if err != nil {
			return nil, err
		}
		return &request.RenameColumn{Database: database, Table: table, Column: colName, NewName: newName}, nil

	case navigator.RuleRedefineColumnClause:
		colChildren := clause.Children()
		colName, err := navigator.AnyNameText(colChildren[1])
		if err != nil {
			return nil, err
		}
		typeName, err := navigator.AnyNameText(colChildren[2])
		if err != nil {
			return nil, err
		}
		dataType, ok := coltype.Lookup(typeName)
		if !ok {
			line, column := navigator.CaptureTerminalPosition(colChildren[2])
			return nil, sqlerr.New(sqlerr.KindUnknownDataType, line, column,
				"unknown data type %q", typeName)
		}
		return &request.RedefineColumn{
			Database: database, Table: table,
			Column: request.ColumnDefinition{Name: colName, DataType: dataType.String()},
		}, nil

	default:
		line, column := navigator.CaptureTerminalPosition(clause)
		return nil, sqlerr.New(sqlerr.KindUnsupportedStatement, line, column,
			"unsupported ALTER TABLE clause")
	}
}

func buildCreateIndex(node navigator.Node) (request.Request, error) {
	children := node.Children()
	unique := hasKeywordChild(node, "UNIQUE")
	ifNotExists := hasKeywordChild(node, "IF")

	i := 1 // CREATE [UNIQUE] INDEX; ON is consumed by the parser, not kept as a node
	if unique {
		i++
	}
	i++ // INDEX
	if ifNotExists {
		i += 3 // IF NOT EXISTS
	}
	indexName, err := navigator.AnyNameText(children[i])
	if err != nil {
		return nil, err
	}
	i++
	tableNode := children[i]
	i++
	database, table, err := qualifiedName(tableNode)
	if err != nil {
		return nil, err
	}

	req := &request.CreateIndex{
		Database: database, Table: table, Index: indexName,
		Unique: unique, IfNotExists: ifNotExists,
	}
	for _, colNode := range children[i:] {
		colChildren := colNode.Children()
		name, err := navigator.AnyNameText(colChildren[0])
		if err != nil {
			return nil, err
		}
		desc := len(colChildren) > 1 && colChildren[1].Text() == "DESC"
		req.Columns = append(req.Columns, request.IndexColumn{Name: name, Descending: desc})
	}
	return req, nil
}

func buildDropIndex(node navigator.Node) (request.Request, error) {
	children := node.Children()
	indexName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	database, table, err := qualifiedName(children[2])
	if err != nil {
		return nil, err
	}
	return &request.DropIndex{Database: database, Table: table, Index: indexName}, nil
}
