package render

// Capabilities describes the schema and transaction features supported by a
// platform. Every field is a fixed property of the platform, never
// configurable at runtime.
type Capabilities struct {
	Transactions          bool // BEGIN/COMMIT/ROLLBACK
	Savepoints            bool // SAVEPOINT / RELEASE SAVEPOINT
	ForeignKeys           bool // foreign key constraints
	AlterTable            bool // ALTER TABLE statements
	PrimaryKeyConstraints bool // PRIMARY KEY constraint DDL
	InlineColumnComments  bool // comments inside column declarations
	CreateDropDatabase    bool // CREATE DATABASE / DROP DATABASE
	AffectedRows          bool // affected-row counts on write statements
	PartialIndexes        bool // indexes restricted by a predicate
}
