// Package request defines the immutable request records create_request
// (internal/reqfactory) builds from a parse tree: one concrete type per
// statement kind, each an owned value aggregate with no references back
// into the parse tree that produced it (spec.md section 3.4/4.7).
package request

import "github.com/sqlcore-engine/sqlfront/internal/expr"

// Kind discriminates the closed family of request records.
type Kind uint8

const (
	KindCreateDatabase Kind = iota
	KindDropDatabase
	KindRenameDatabase
	KindSetDatabaseAttributes
	KindUseDatabase
	KindAttachDatabase
	KindDetachDatabase

	KindCreateTable
	KindDropTable
	KindRenameTable
	KindSetTableAttributes
	KindAddColumn
	KindDropColumn
	KindRenameColumn
	KindRedefineColumn

	KindCreateIndex
	KindDropIndex

	KindCreateUser
	KindDropUser
	KindSetUserAttributes

	KindAddUserAccessKey
	KindDropUserAccessKey
	KindRenameUserAccessKey
	KindSetUserAccessKeyAttributes

	KindAddUserToken
	KindDropUserToken
	KindRenameUserToken
	KindSetUserTokenAttributes

	KindCheckUserToken

	KindGrantPermissions
	KindRevokePermissions
	KindShowPermissions
	KindShowDatabases
	KindShowTables
	KindDescribeTable

	KindSelect
	KindInsert
	KindUpdate
	KindDelete

	KindBeginTransaction
	KindCommitTransaction
	KindRollbackTransaction
	KindSavepoint
	KindRelease
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindCreateDatabase:             "CreateDatabase",
	KindDropDatabase:               "DropDatabase",
	KindRenameDatabase:             "RenameDatabase",
	KindSetDatabaseAttributes:      "SetDatabaseAttributes",
	KindUseDatabase:                "UseDatabase",
	KindAttachDatabase:             "AttachDatabase",
	KindDetachDatabase:             "DetachDatabase",
	KindCreateTable:                "CreateTable",
	KindDropTable:                  "DropTable",
	KindRenameTable:                "RenameTable",
	KindSetTableAttributes:         "SetTableAttributes",
	KindAddColumn:                  "AddColumn",
	KindDropColumn:                 "DropColumn",
	KindRenameColumn:               "RenameColumn",
	KindRedefineColumn:             "RedefineColumn",
	KindCreateIndex:                "CreateIndex",
	KindDropIndex:                  "DropIndex",
	KindCreateUser:                 "CreateUser",
	KindDropUser:                   "DropUser",
	KindSetUserAttributes:          "SetUserAttributes",
	KindAddUserAccessKey:           "AddUserAccessKey",
	KindDropUserAccessKey:          "DropUserAccessKey",
	KindRenameUserAccessKey:        "RenameUserAccessKey",
	KindSetUserAccessKeyAttributes: "SetUserAccessKeyAttributes",
	KindAddUserToken:               "AddUserToken",
	KindDropUserToken:              "DropUserToken",
	KindRenameUserToken:            "RenameUserToken",
	KindSetUserTokenAttributes:     "SetUserTokenAttributes",
	KindCheckUserToken:             "CheckUserToken",
	KindGrantPermissions:           "GrantPermissions",
	KindRevokePermissions:          "RevokePermissions",
	KindShowPermissions:            "ShowPermissions",
	KindShowDatabases:              "ShowDatabases",
	KindShowTables:                 "ShowTables",
	KindDescribeTable:              "DescribeTable",
	KindSelect:                     "Select",
	KindInsert:                     "Insert",
	KindUpdate:                     "Update",
	KindDelete:                     "Delete",
	KindBeginTransaction:           "BeginTransaction",
	KindCommitTransaction:          "CommitTransaction",
	KindRollbackTransaction:        "RollbackTransaction",
	KindSavepoint:                  "Savepoint",
	KindRelease:                    "Release",
}

// Request is implemented by every concrete record. The unexported marker
// method closes the set to this package, mirroring the node()/Pos()
// interface idiom used for the parse tree's own AST (internal/sqlparse,
// and the teacher's engine/ast package it is grounded on).
type Request interface {
	request()
	Kind() Kind
}

// Attribute is one KEY = VALUE pair from a WITH-style attribute list
// (CREATE DATABASE, CREATE USER, ALTER ... SET).
type Attribute struct {
	Name  string
	Value expr.Node
}

// ColumnConstraints captures the per-column constraint set a CREATE TABLE
// or ADD/REDEFINE COLUMN column definition may carry. PRIMARY KEY is
// explicitly rejected by the factory (spec.md section 4.6) and so has no
// field here.
type ColumnConstraints struct {
	NotNull        bool
	Unique         bool
	HasDefault     bool
	Default        expr.Node
	HasCheck       bool
	Check          expr.Node
	Collate        string
	HasCollate     bool
	References     bool
	RefTable       string
	RefColumn      string
	HasRefColumn   bool
}

// ColumnDefinition is one column of a CREATE TABLE statement or the
// payload of an ADD COLUMN / REDEFINE COLUMN request.
type ColumnDefinition struct {
	Name        string
	DataType    string
	Constraints ColumnConstraints
}

// PermissionMask is a bit-set of the grantable permissions (spec.md
// section 4.6).
type PermissionMask uint16

const (
	PermSelect PermissionMask = 1 << iota
	PermInsert
	PermUpdate
	PermDelete
	PermDrop
	PermAlter
	PermShow
	PermReadOnly
	PermReadWrite
	PermAll
)

// PermissionTarget names the object permissions apply to: database.table,
// database.*, *, or *.*.
type PermissionTarget struct {
	Database     string
	AllDatabases bool
	Table        string
	AllTables    bool
}

// TableRef names a source or target table, with an optional alias.
type TableRef struct {
	Database string
	Table    string
	Alias    string
}
