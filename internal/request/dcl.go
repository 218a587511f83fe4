package request

// GrantPermissions is "GRANT perm, ... ON target TO user [WITH GRANT OPTION]".
type GrantPermissions struct {
	Permissions PermissionMask
	Target      PermissionTarget
	UserName    string
	GrantOption bool
}

func (*GrantPermissions) request()   {}
func (*GrantPermissions) Kind() Kind { return KindGrantPermissions }

// RevokePermissions is "REVOKE perm, ... ON target FROM user".
type RevokePermissions struct {
	Permissions PermissionMask
	Target      PermissionTarget
	UserName    string
}

func (*RevokePermissions) request()   {}
func (*RevokePermissions) Kind() Kind { return KindRevokePermissions }

// ShowPermissions is "SHOW PERMISSIONS [user]"; an empty UserName
// means all users.
type ShowPermissions struct {
	UserName string
}

func (*ShowPermissions) request()   {}
func (*ShowPermissions) Kind() Kind { return KindShowPermissions }

// ShowDatabases is "SHOW DATABASES".
type ShowDatabases struct{}

func (*ShowDatabases) request()   {}
func (*ShowDatabases) Kind() Kind { return KindShowDatabases }

// ShowTables is "SHOW TABLES".
type ShowTables struct{}

func (*ShowTables) request()   {}
func (*ShowTables) Kind() Kind { return KindShowTables }

// DescribeTable is "DESCRIBE TABLE name".
type DescribeTable struct {
	Database string
	Table    string
}

func (*DescribeTable) request()   {}
func (*DescribeTable) Kind() Kind { return KindDescribeTable }
