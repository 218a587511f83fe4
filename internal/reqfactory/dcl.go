package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// basicPermissions is the set PermissionType::kAll and READ_ONLY/READ_WRITE
// expand against.
const basicPermissions = request.PermSelect | request.PermInsert | request.PermUpdate |
	request.PermDelete | request.PermDrop | request.PermAlter | request.PermShow

func permissionMask(permNodes []navigator.Node) (request.PermissionMask, error) {
	var mask request.PermissionMask
	for _, p := range permNodes {
		name, err := navigator.AnyNameText(p)
		if err != nil {
			return 0, err
		}
		switch name {
		case "ALL":
			mask |= basicPermissions
		case "SELECT":
			mask |= request.PermSelect
		case "INSERT":
			mask |= request.PermInsert
		case "UPDATE":
			mask |= request.PermUpdate
		case "DELETE":
			mask |= request.PermDelete
		case "DROP":
			mask |= request.PermDrop
		case "ALTER":
			mask |= request.PermAlter
		case "SHOW":
			mask |= request.PermShow
		case "READ_ONLY":
			mask |= request.PermSelect | request.PermShow
		case "READ_WRITE":
			mask |= request.PermSelect | request.PermInsert | request.PermUpdate |
				request.PermDelete | request.PermShow
		default:
			line, column := navigator.CaptureTerminalPosition(p)
			return 0, sqlerr.New(sqlerr.KindInvalidPermission, line, column,
				"unknown permission %q", name)
		}
	}
	return mask, nil
}

// permissionTarget interprets a RuleQualifiedTableName node built by
// parsePermissionTarget, where either part may be a bare '*'.
func permissionTarget(node navigator.Node) (request.PermissionTarget, error) {
	children := node.Children()
	isStar := func(n navigator.Node) bool {
		return n.IsTerminal() && n.TokenType() == navigator.TokStar
	}
	if len(children) == 1 {
		// A single bare part names a table (or "*" for all tables) in
		// whatever database is current; it does not imply AllDatabases.
		if isStar(children[0]) {
			return request.PermissionTarget{AllTables: true}, nil
		}
		table, err := navigator.AnyNameText(children[0])
		if err != nil {
			return request.PermissionTarget{}, err
		}
		return request.PermissionTarget{Table: table}, nil
	}
	target := request.PermissionTarget{}
	if !isStar(children[0]) {
		database, err := navigator.AnyNameText(children[0])
		if err != nil {
			return request.PermissionTarget{}, err
		}
		target.Database = database
	} else {
		target.AllDatabases = true
	}
	if isStar(children[1]) {
		target.AllTables = true
	} else {
		table, err := navigator.AnyNameText(children[1])
		if err != nil {
			return request.PermissionTarget{}, err
		}
		target.Table = table
	}
	return target, nil
}

// objectIndex locates the RuleQualifiedTableName permission-target node
// built by parsePermissionTarget; everything strictly between the leading
// GRANT/REVOKE terminal and the ON terminal just before it is a permission.
func objectIndex(children []navigator.Node) int {
	for i, c := range children {
		if navigator.NonTerminalType(c) == navigator.RuleQualifiedTableName {
			return i
		}
	}
	return len(children)
}

func buildGrant(node navigator.Node) (request.Request, error) {
	children := node.Children()
	objIdx := objectIndex(children)
	mask, err := permissionMask(children[1 : objIdx-1])
	if err != nil {
		return nil, err
	}
	target, err := permissionTarget(children[objIdx])
	if err != nil {
		return nil, err
	}
	userName, err := navigator.AnyNameText(children[objIdx+2])
	if err != nil {
		return nil, err
	}
	return &request.GrantPermissions{
		Permissions: mask,
		Target:      target,
		UserName:    userName,
		GrantOption: hasKeywordChild(node, "OPTION"),
	}, nil
}

func buildRevoke(node navigator.Node) (request.Request, error) {
	children := node.Children()
	objIdx := objectIndex(children)
	mask, err := permissionMask(children[1 : objIdx-1])
	if err != nil {
		return nil, err
	}
	target, err := permissionTarget(children[objIdx])
	if err != nil {
		return nil, err
	}
	userName, err := navigator.AnyNameText(children[objIdx+2])
	if err != nil {
		return nil, err
	}
	return &request.RevokePermissions{Permissions: mask, Target: target, UserName: userName}, nil
}

func buildShowPermissions(node navigator.Node) (request.Request, error) {
	children := node.Children()
	if len(children) > 2 {
		userName, err := navigator.AnyNameText(children[2])
		if err != nil {
			return nil, err
		}
		return &request.ShowPermissions{UserName: userName}, nil
	}
	return &request.ShowPermissions{}, nil
}

func buildDescribeTable(node navigator.Node) (request.Request, error) {
	database, table, err := qualifiedName(node.Children()[1])
	if err != nil {
		return nil, err
	}
	return &request.DescribeTable{Database: database, Table: table}, nil
}
