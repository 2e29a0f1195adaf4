package dialect

import "github.com/querial/dialect/internal/types"

// Platform translates generic schema operations and scalar expressions into
// one backend's literal query text. Implementations are stateless and safe
// for concurrent use; every method is a pure function of its arguments.
//
// Expression builders take already-rendered fragments and splice them into
// templates without parsing them. Operations the backend cannot express
// return an UnsupportedOperationError; operations called with arguments
// violating their documented preconditions return an InvalidArgumentError.
// Methods never partially render: they return either the whole fragment or
// an error.
type Platform interface {
	// Name returns the fixed, lower-case platform name used to select this
	// platform from the registry.
	Name() string

	// Capabilities reports which schema and transaction features the backend
	// supports. The result is constant across calls.
	Capabilities() Capabilities

	// Identifier and comment syntax.
	QuoteCharacter() string
	QuoteIdentifier(name string) string
	CommentStart() string
	CommentEnd() string
	InlineComment(comment string) string

	// Scalar expression builders.
	RegexpExpression(subject, pattern string) (string, error)
	GUIDExpression() (string, error)
	TrimExpression(expr string, mode types.TrimMode, trimChar string) (string, error)
	LocateExpression(expr, substr string, start int) (string, error)
	NowExpression(kind types.TimeKind) (string, error)
	SubstringExpression(expr, start, length string) (string, error)
	NotExpression(expr string) (string, error)
	DateDiffExpression(date1, date2 types.DateValue) (string, error)
	DateArithmeticExpression(date types.DateValue, op types.DateOp, interval int64, unit types.IntervalUnit) (string, error)
	BitAndExpression(left, right string) (string, error)
	BitOrExpression(left, right string) (string, error)
	IsMissingExpression(expr string) (string, error)
	IsNotMissingExpression(expr string) (string, error)
	MD5Expression(expr string) (string, error)
	ModExpression(dividend, divisor string) (string, error)

	// Type declaration builders.
	BooleanTypeDeclaration(col types.TypeDescriptor) (string, error)
	SmallIntTypeDeclaration(col types.TypeDescriptor) (string, error)
	IntegerTypeDeclaration(col types.TypeDescriptor) (string, error)
	BigIntTypeDeclaration(col types.TypeDescriptor) (string, error)
	ClobTypeDeclaration(col types.TypeDescriptor) (string, error)
	BlobTypeDeclaration(col types.TypeDescriptor) (string, error)
	DecimalTypeDeclaration(col types.TypeDescriptor) (string, error)
	VarcharTypeDeclaration(col types.TypeDescriptor) (string, error)
	BinaryTypeDeclaration(col types.TypeDescriptor) (string, error)
	GUIDTypeDeclaration(col types.TypeDescriptor) (string, error)
	JSONTypeDeclaration(col types.TypeDescriptor) (string, error)
	DefaultValueClause(col types.TypeDescriptor) (string, error)
	CheckConstraintClause(definitions []string) (string, error)
	UniqueConstraintClause(name string, columns []string) (string, error)

	// DDL statement builders.
	CreateIndexSQL(idx types.IndexDescriptor, table string) (string, error)
	DropIndexSQL(index, table string, useGSI bool) (string, error)
	CreateTableSQL(table string, columns []types.Column) (string, error)
	DropTableSQL(table string) (string, error)
	CreateTemporaryTableSQL(table string, columns []types.Column) (string, error)
	DropTemporaryTableSQL(table string) (string, error)
	CreateDatabaseSQL(name string) (string, error)
	DropDatabaseSQL(name string) (string, error)
	CreateConstraintSQL(constraint types.Identifier, table string) (string, error)
	DropConstraintSQL(constraint types.Identifier, table string) (string, error)
	CreateForeignKeySQL(foreignKey types.Identifier, table string) (string, error)
	DropForeignKeySQL(foreignKey types.Identifier, table string) (string, error)
	CreatePrimaryKeySQL(idx types.IndexDescriptor, table string) (string, error)
	ColumnsDeclarationSQL(columns []types.Column) (string, error)
	ColumnDeclarationSQL(name string, col types.TypeDescriptor) (string, error)
	ColumnCommentSQL(comment string) (string, error)
	ForUpdateSQL() (string, error)
	ReadLockSQL() (string, error)
	WriteLockSQL() (string, error)

	// Temporal format strings.
	DateFormat() string
	TimeFormat() string
	DateTimeFormat() string
	DateTimeTzFormat() string
}
