package request

import "github.com/sqlcore-engine/sqlfront/internal/expr"

// CreateUser is "CREATE USER name [WITH (...)]".
type CreateUser struct {
	Name       string
	Attributes []Attribute
}

func (*CreateUser) request()   {}
func (*CreateUser) Kind() Kind { return KindCreateUser }

// DropUser is "DROP USER [IF EXISTS] name" — like DropTable, implements
// the corrected IF EXISTS check.
type DropUser struct {
	Name     string
	IfExists bool
}

func (*DropUser) request()   {}
func (*DropUser) Kind() Kind { return KindDropUser }

// SetUserAttributes is "ALTER USER name SET (...)".
type SetUserAttributes struct {
	Name       string
	Attributes []Attribute
}

func (*SetUserAttributes) request()   {}
func (*SetUserAttributes) Kind() Kind { return KindSetUserAttributes }

// AddUserAccessKey is "ALTER USER name ADD ACCESS KEY key_name 'key_text'".
type AddUserAccessKey struct {
	UserName string
	KeyName  string
	KeyText  string
}

func (*AddUserAccessKey) request()   {}
func (*AddUserAccessKey) Kind() Kind { return KindAddUserAccessKey }

// DropUserAccessKey is "ALTER USER name DROP ACCESS KEY key_name".
type DropUserAccessKey struct {
	UserName string
	KeyName  string
}

func (*DropUserAccessKey) request()   {}
func (*DropUserAccessKey) Kind() Kind { return KindDropUserAccessKey }

// RenameUserAccessKey is "ALTER USER name ALTER ACCESS KEY key_name RENAME TO new_name".
type RenameUserAccessKey struct {
	UserName string
	KeyName  string
	NewName  string
}

func (*RenameUserAccessKey) request()   {}
func (*RenameUserAccessKey) Kind() Kind { return KindRenameUserAccessKey }

// SetUserAccessKeyAttributes is "ALTER USER name ALTER ACCESS KEY key_name SET (...)".
type SetUserAccessKeyAttributes struct {
	UserName   string
	KeyName    string
	Attributes []Attribute
}

func (*SetUserAccessKeyAttributes) request()   {}
func (*SetUserAccessKeyAttributes) Kind() Kind { return KindSetUserAccessKeyAttributes }

// AddUserToken is "ALTER USER name ADD TOKEN token_name [WITH (...)]".
type AddUserToken struct {
	UserName   string
	TokenName  string
	Attributes []Attribute
}

func (*AddUserToken) request()   {}
func (*AddUserToken) Kind() Kind { return KindAddUserToken }

// DropUserToken is "ALTER USER name DROP TOKEN token_name".
type DropUserToken struct {
	UserName  string
	TokenName string
}

func (*DropUserToken) request()   {}
func (*DropUserToken) Kind() Kind { return KindDropUserToken }

// RenameUserToken is "ALTER USER name ALTER TOKEN token_name RENAME TO new_name".
type RenameUserToken struct {
	UserName  string
	TokenName string
	NewName   string
}

func (*RenameUserToken) request()   {}
func (*RenameUserToken) Kind() Kind { return KindRenameUserToken }

// SetUserTokenAttributes is "ALTER USER name ALTER TOKEN token_name SET (...)".
type SetUserTokenAttributes struct {
	UserName   string
	TokenName  string
	Attributes []Attribute
}

func (*SetUserTokenAttributes) request()   {}
func (*SetUserTokenAttributes) Kind() Kind { return KindSetUserTokenAttributes }

// CheckUserToken is "CHECK USER name TOKEN token_name token_value" — the
// token value is a constant expression (string or hex-blob literal), not a
// bare identifier, matching how the underlying token secret is compared as
// a binary value rather than parsed as SQL text.
type CheckUserToken struct {
	UserName  string
	TokenName string
	Value     expr.Node
}

func (*CheckUserToken) request()   {}
func (*CheckUserToken) Kind() Kind { return KindCheckUserToken }
