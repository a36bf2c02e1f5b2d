// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryEnabled holds the string denoting the retry_enabled field in the database.
	FieldRetryEnabled = "retry_enabled"
	// FieldBackoffMultiplier holds the string denoting the backoff_multiplier field in the database.
	FieldBackoffMultiplier = "backoff_multiplier"
	// FieldInitialDelaySeconds holds the string denoting the initial_delay_seconds field in the database.
	FieldInitialDelaySeconds = "initial_delay_seconds"
	// FieldMaxDelaySeconds holds the string denoting the max_delay_seconds field in the database.
	FieldMaxDelaySeconds = "max_delay_seconds"
	// FieldRetryAt holds the string denoting the retry_at field in the database.
	FieldRetryAt = "retry_at"
	// FieldExecutionTimeoutSeconds holds the string denoting the execution_timeout_seconds field in the database.
	FieldExecutionTimeoutSeconds = "execution_timeout_seconds"
	// FieldHeartbeatIntervalSeconds holds the string denoting the heartbeat_interval_seconds field in the database.
	FieldHeartbeatIntervalSeconds = "heartbeat_interval_seconds"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldLogs holds the string denoting the logs field in the database.
	FieldLogs = "logs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "jobs"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldStep,
	FieldStatus,
	FieldPriority,
	FieldAttempts,
	FieldMaxAttempts,
	FieldInput,
	FieldOutput,
	FieldErrorKind,
	FieldErrorMessage,
	FieldRetryEnabled,
	FieldBackoffMultiplier,
	FieldInitialDelaySeconds,
	FieldMaxDelaySeconds,
	FieldRetryAt,
	FieldExecutionTimeoutSeconds,
	FieldHeartbeatIntervalSeconds,
	FieldWorkerID,
	FieldStartedAt,
	FieldLastHeartbeat,
	FieldLogs,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StepValidator is a validator for the "step" field. It is called by the builders before save.
	StepValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// MaxAttemptsValidator is a validator for the "max_attempts" field. It is called by the builders before save.
	MaxAttemptsValidator func(int) error
	// DefaultRetryEnabled holds the default value on creation for the "retry_enabled" field.
	DefaultRetryEnabled bool
	// DefaultBackoffMultiplier holds the default value on creation for the "backoff_multiplier" field.
	DefaultBackoffMultiplier float64
	// DefaultInitialDelaySeconds holds the default value on creation for the "initial_delay_seconds" field.
	DefaultInitialDelaySeconds int
	// DefaultMaxDelaySeconds holds the default value on creation for the "max_delay_seconds" field.
	DefaultMaxDelaySeconds int
	// DefaultExecutionTimeoutSeconds holds the default value on creation for the "execution_timeout_seconds" field.
	DefaultExecutionTimeoutSeconds int
	// DefaultHeartbeatIntervalSeconds holds the default value on creation for the "heartbeat_interval_seconds" field.
	DefaultHeartbeatIntervalSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryEnabled orders the results by the retry_enabled field.
func ByRetryEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryEnabled, opts...).ToFunc()
}

// ByBackoffMultiplier orders the results by the backoff_multiplier field.
func ByBackoffMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackoffMultiplier, opts...).ToFunc()
}

// ByInitialDelaySeconds orders the results by the initial_delay_seconds field.
func ByInitialDelaySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialDelaySeconds, opts...).ToFunc()
}

// ByMaxDelaySeconds orders the results by the max_delay_seconds field.
func ByMaxDelaySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDelaySeconds, opts...).ToFunc()
}

// ByRetryAt orders the results by the retry_at field.
func ByRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAt, opts...).ToFunc()
}

// ByExecutionTimeoutSeconds orders the results by the execution_timeout_seconds field.
func ByExecutionTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeoutSeconds, opts...).ToFunc()
}

// ByHeartbeatIntervalSeconds orders the results by the heartbeat_interval_seconds field.
func ByHeartbeatIntervalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatIntervalSeconds, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
