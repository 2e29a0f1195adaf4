package couchbase

import (
	"fmt"
	"strings"

	"github.com/querial/dialect/internal/types"
)

// Couchbase documents carry no column types, so every type-declaration
// builder rejects uniformly rather than emitting an empty clause some call
// sites would misread as valid DDL.

// BooleanTypeDeclaration has no representation in N1QL.
func (p *Platform) BooleanTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("boolean type declaration")
}

// SmallIntTypeDeclaration has no representation in N1QL.
func (p *Platform) SmallIntTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return p.integerTypeDeclaration("smallint type declaration")
}

// IntegerTypeDeclaration has no representation in N1QL.
func (p *Platform) IntegerTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return p.integerTypeDeclaration("integer type declaration")
}

// BigIntTypeDeclaration has no representation in N1QL.
func (p *Platform) BigIntTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return p.integerTypeDeclaration("bigint type declaration")
}

// integerTypeDeclaration is the shared rejection path for the integer
// variants.
func (p *Platform) integerTypeDeclaration(operation string) (string, error) {
	return "", p.unsupported(operation)
}

// ClobTypeDeclaration has no representation in N1QL.
func (p *Platform) ClobTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("clob type declaration")
}

// BlobTypeDeclaration has no representation in N1QL.
func (p *Platform) BlobTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("blob type declaration")
}

// DecimalTypeDeclaration has no representation in N1QL.
func (p *Platform) DecimalTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("decimal type declaration")
}

// VarcharTypeDeclaration has no representation in N1QL.
func (p *Platform) VarcharTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("varchar type declaration")
}

// BinaryTypeDeclaration has no representation in N1QL.
func (p *Platform) BinaryTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("binary type declaration")
}

// GUIDTypeDeclaration has no representation in N1QL.
func (p *Platform) GUIDTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("guid type declaration")
}

// JSONTypeDeclaration has no representation in N1QL; documents are JSON
// already.
func (p *Platform) JSONTypeDeclaration(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("json type declaration")
}

// DefaultValueClause has no representation in N1QL.
func (p *Platform) DefaultValueClause(col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("default value clause")
}

// CheckConstraintClause has no representation in N1QL.
func (p *Platform) CheckConstraintClause(definitions []string) (string, error) {
	return "", p.unsupported("check constraint clause")
}

// UniqueConstraintClause has no representation in N1QL.
func (p *Platform) UniqueConstraintClause(name string, columns []string) (string, error) {
	return "", p.unsupported("unique constraint clause")
}

// CreateIndexSQL renders index creation. A primary index covers the whole
// keyspace and must not declare columns; a secondary index must declare at
// least one. A predicate on the descriptor renders a partial index.
func (p *Platform) CreateIndexSQL(idx types.IndexDescriptor, table string) (string, error) {
	const op = "create index"
	if len(idx.Flags) > 0 {
		return "", p.unsupported(op, "index flags")
	}
	if idx.Primary {
		if len(idx.Columns) > 0 {
			return "", p.invalidArgument(op, "primary index cannot declare columns")
		}
		return fmt.Sprintf("CREATE PRIMARY INDEX %s ON %s", idx.Name, table), nil
	}
	if len(idx.Columns) == 0 {
		return "", p.invalidArgument(op, "at least one column is required")
	}
	sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.Name, table, strings.Join(idx.Columns, ", "))
	if idx.IsPartial() {
		sql += " WHERE " + idx.Predicate
	}
	return sql, nil
}

// DropIndexSQL renders index removal. N1QL addresses an index through its
// owning keyspace, so the table is mandatory. useGSI selects the
// secondary-index engine explicitly.
func (p *Platform) DropIndexSQL(index, table string, useGSI bool) (string, error) {
	if table == "" {
		return "", p.invalidArgument("drop index", "owning table is required")
	}
	sql := fmt.Sprintf("DROP INDEX %s.%s", table, index)
	if useGSI {
		sql += " USING GSI"
	}
	return sql, nil
}

// The remaining DDL surface does not exist in N1QL: no table or database
// DDL, no constraints, no locking.

// CreateTableSQL has no representation in N1QL.
func (p *Platform) CreateTableSQL(table string, columns []types.Column) (string, error) {
	return "", p.unsupported("create table")
}

// DropTableSQL has no representation in N1QL.
func (p *Platform) DropTableSQL(table string) (string, error) {
	return "", p.unsupported("drop table")
}

// CreateTemporaryTableSQL has no representation in N1QL.
func (p *Platform) CreateTemporaryTableSQL(table string, columns []types.Column) (string, error) {
	return "", p.unsupported("create temporary table")
}

// DropTemporaryTableSQL has no representation in N1QL.
func (p *Platform) DropTemporaryTableSQL(table string) (string, error) {
	return "", p.unsupported("drop temporary table")
}

// CreateDatabaseSQL has no representation in N1QL.
func (p *Platform) CreateDatabaseSQL(name string) (string, error) {
	return "", p.unsupported("create database")
}

// DropDatabaseSQL has no representation in N1QL.
func (p *Platform) DropDatabaseSQL(name string) (string, error) {
	return "", p.unsupported("drop database")
}

// CreateConstraintSQL has no representation in N1QL.
func (p *Platform) CreateConstraintSQL(constraint types.Identifier, table string) (string, error) {
	return "", p.unsupported("create constraint")
}

// DropConstraintSQL has no representation in N1QL.
func (p *Platform) DropConstraintSQL(constraint types.Identifier, table string) (string, error) {
	return "", p.unsupported("drop constraint")
}

// CreateForeignKeySQL has no representation in N1QL.
func (p *Platform) CreateForeignKeySQL(foreignKey types.Identifier, table string) (string, error) {
	return "", p.unsupported("create foreign key")
}

// DropForeignKeySQL has no representation in N1QL.
func (p *Platform) DropForeignKeySQL(foreignKey types.Identifier, table string) (string, error) {
	return "", p.unsupported("drop foreign key")
}

// CreatePrimaryKeySQL has no representation in N1QL.
func (p *Platform) CreatePrimaryKeySQL(idx types.IndexDescriptor, table string) (string, error) {
	return "", p.unsupported("create primary key")
}

// ColumnsDeclarationSQL has no representation in N1QL.
func (p *Platform) ColumnsDeclarationSQL(columns []types.Column) (string, error) {
	return "", p.unsupported("column list declaration")
}

// ColumnDeclarationSQL has no representation in N1QL.
func (p *Platform) ColumnDeclarationSQL(name string, col types.TypeDescriptor) (string, error) {
	return "", p.unsupported("column declaration")
}

// ColumnCommentSQL has no representation in N1QL.
func (p *Platform) ColumnCommentSQL(comment string) (string, error) {
	return "", p.unsupported("column comment")
}

// ForUpdateSQL has no representation in N1QL.
func (p *Platform) ForUpdateSQL() (string, error) {
	return "", p.unsupported("for update clause")
}

// ReadLockSQL has no representation in N1QL.
func (p *Platform) ReadLockSQL() (string, error) {
	return "", p.unsupported("read lock clause")
}

// WriteLockSQL has no representation in N1QL.
func (p *Platform) WriteLockSQL() (string, error) {
	return "", p.unsupported("write lock clause")
}
