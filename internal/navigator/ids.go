// Package navigator implements generic, grammar-agnostic helpers over the
// parse tree produced by internal/sqlparse: finding statements, descending
// to a particular rule or terminal, capturing source positions, and
// unquoting/canonicalizing identifier text (spec.md section 3.5/4.4).
//
// The core never constructs parse-tree nodes, only reads them through this
// package's Node interface — the rule/token identifier sets below are the
// "stable closed set shared with the grammar" spec.md speaks of.
package navigator

// RuleID identifies a non-terminal (rule) production of the grammar.
type RuleID uint16

// TokenType identifies a terminal (token) kind produced by the lexer.
type TokenType uint16

// InvalidRule and InvalidToken are the sentinels NonTerminalType/
// TerminalType return when asked about a node of the other kind.
const (
	InvalidRule  RuleID    = 0
	InvalidToken TokenType = 0
)

// Rule identifiers. Every production the parser builds a node for has one
// of these; productions the parser recognizes only implicitly (by child
// shape, e.g. a bare parenthesized expression) do not need their own id.
const (
	RuleSqlStmt RuleID = iota + 1
	RuleSqlStmtList

	RuleCreateDatabaseStmt
	RuleDropDatabaseStmt
	RuleRenameDatabaseStmt
	RuleSetDatabaseAttributesStmt
	RuleUseDatabaseStmt
	RuleAttachDatabaseStmt
	RuleDetachDatabaseStmt

	RuleCreateTableStmt
	RuleDropTableStmt
	RuleRenameTableStmt
	RuleSetTableAttributesStmt
	RuleAlterTableStmt
	RuleAddColumnClause
	RuleDropColumnClause
	RuleRenameColumnClause
	RuleRedefineColumnClause
	RuleColumnDef
	RuleColumnConstraint
	RuleTableConstraint

	RuleCreateIndexStmt
	RuleDropIndexStmt
	RuleIndexedColumn

	RuleCreateUserStmt
	RuleDropUserStmt
	RuleSetUserAttributesStmt
	RuleAlterUserStmt
	RuleUserAccessKeyClause
	RuleUserTokenClause
	RuleCheckUserTokenStmt

	RuleGrantStmt
	RuleRevokeStmt
	RuleShowPermissionsStmt
	RuleShowDatabasesStmt
	RuleShowTablesStmt
	RuleDescribeTableStmt

	RuleSelectStmt
	RuleSelectCore
	RuleResultColumn
	RuleTableOrSubquery
	RuleWhereClause
	RuleLimitClause

	RuleInsertStmt
	RuleValuesClause
	RuleValueRow
	RuleUpdateStmt
	RuleSetClause
	RuleDeleteStmt

	RuleBeginStmt
	RuleCommitStmt
	RuleRollbackStmt
	RuleSavepointStmt
	RuleReleaseStmt

	RuleAttributeList
	RuleAttribute

	RuleExpr
	RuleSimpleExpr
	RuleLiteralValue
	RuleSignedNumber
	RuleColumnReference
	RuleInList
	RuleAnyName
	RuleQualifiedTableName
)

// Token types. Punctuation and operator tokens carry their literal text;
// keyword tokens are case-insensitively matched by the lexer and always
// normalized to uppercase text.
const (
	TokIdentifier TokenType = iota + 1
	TokQuotedIdentifier
	TokStringLiteral
	TokNumericLiteral
	TokBlobLiteral

	TokKeyword // catch-all: keyword identity is in the token's text

	TokDot
	TokComma
	TokSemicolon
	TokLParen
	TokRParen
	TokStar

	TokPlus
	TokMinus
	TokSlash
	TokPercent
	TokConcat
	TokAmp
	TokPipe
	TokTilde
	TokShl
	TokShr
	TokEq
	TokEq2
	TokNeq
	TokNeq2
	TokLt
	TokLe
	TokGt
	TokGe

	TokEOF
)

// Keywords recognized by the lexer, normalized to uppercase. The set is not
// exhaustive of every SQL keyword in existence, only of those this grammar
// uses.
var Keywords = map[string]bool{
	"CREATE": true, "DROP": true, "RENAME": true, "ALTER": true, "SET": true,
	"USE": true, "ATTACH": true, "DETACH": true, "DATABASE": true, "DATABASES": true,
	"TABLE": true, "TABLES": true, "INDEX": true, "COLUMN": true, "ADD": true,
	"USER": true, "ACCESS": true, "KEY": true, "TOKEN": true, "CHECK": true,
	"GRANT": true, "REVOKE": true, "WITH": true, "OPTION": true, "SHOW": true,
	"PERMISSIONS": true, "DESCRIBE": true, "ON": true, "TO": true, "FROM": true,
	"SELECT": true, "INSERT": true, "UPDATE": true, "DELETE": true, "INTO": true,
	"VALUES": true, "WHERE": true, "LIMIT": true, "OFFSET": true, "AS": true,
	"BEGIN": true, "COMMIT": true, "ROLLBACK": true, "TRANSACTION": true,
	"SAVEPOINT": true, "RELEASE": true, "TO_SAVEPOINT": true,
	"IF": true, "EXISTS": true, "NOT": true, "NULL": true, "DEFAULT": true,
	"UNIQUE": true, "REFERENCES": true, "COLLATE": true, "PRIMARY": true,
	"AND": true, "OR": true, "IS": true, "IN": true, "LIKE": true, "BETWEEN": true,
	"TRUE": true, "FALSE": true, "CAST": true, "DESC": true, "ASC": true,
	"CURRENT_TIME": true, "CURRENT_DATE": true, "CURRENT_TIMESTAMP": true,
	"READ_ONLY": true, "READ_WRITE": true, "ALL": true,
}
