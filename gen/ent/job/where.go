// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/accessly/docpipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentID, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStep, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxAttempts, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryEnabled applies equality check predicate on the "retry_enabled" field. It's identical to RetryEnabledEQ.
func RetryEnabled(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryEnabled, v))
}

// BackoffMultiplier applies equality check predicate on the "backoff_multiplier" field. It's identical to BackoffMultiplierEQ.
func BackoffMultiplier(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBackoffMultiplier, v))
}

// InitialDelaySeconds applies equality check predicate on the "initial_delay_seconds" field. It's identical to InitialDelaySecondsEQ.
func InitialDelaySeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInitialDelaySeconds, v))
}

// MaxDelaySeconds applies equality check predicate on the "max_delay_seconds" field. It's identical to MaxDelaySecondsEQ.
func MaxDelaySeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxDelaySeconds, v))
}

// RetryAt applies equality check predicate on the "retry_at" field. It's identical to RetryAtEQ.
func RetryAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryAt, v))
}

// ExecutionTimeoutSeconds applies equality check predicate on the "execution_timeout_seconds" field. It's identical to ExecutionTimeoutSecondsEQ.
func ExecutionTimeoutSeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldExecutionTimeoutSeconds, v))
}

// HeartbeatIntervalSeconds applies equality check predicate on the "heartbeat_interval_seconds" field. It's identical to HeartbeatIntervalSecondsEQ.
func HeartbeatIntervalSeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldHeartbeatIntervalSeconds, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDocumentID, vs...))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStep, v))
}

// StepContains applies the Contains predicate on the "step" field.
func StepContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStep, v))
}

// StepHasPrefix applies the HasPrefix predicate on the "step" field.
func StepHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStep, v))
}

// StepHasSuffix applies the HasSuffix predicate on the "step" field.
func StepHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStep, v))
}

// StepEqualFold applies the EqualFold predicate on the "step" field.
func StepEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStep, v))
}

// StepContainsFold applies the ContainsFold predicate on the "step" field.
func StepContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStep, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStatus, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPriority, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxAttempts, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOutput))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryEnabledEQ applies the EQ predicate on the "retry_enabled" field.
func RetryEnabledEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryEnabled, v))
}

// RetryEnabledNEQ applies the NEQ predicate on the "retry_enabled" field.
func RetryEnabledNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRetryEnabled, v))
}

// BackoffMultiplierEQ applies the EQ predicate on the "backoff_multiplier" field.
func BackoffMultiplierEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBackoffMultiplier, v))
}

// BackoffMultiplierNEQ applies the NEQ predicate on the "backoff_multiplier" field.
func BackoffMultiplierNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldBackoffMultiplier, v))
}

// BackoffMultiplierIn applies the In predicate on the "backoff_multiplier" field.
func BackoffMultiplierIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldBackoffMultiplier, vs...))
}

// BackoffMultiplierNotIn applies the NotIn predicate on the "backoff_multiplier" field.
func BackoffMultiplierNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldBackoffMultiplier, vs...))
}

// BackoffMultiplierGT applies the GT predicate on the "backoff_multiplier" field.
func BackoffMultiplierGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldBackoffMultiplier, v))
}

// BackoffMultiplierGTE applies the GTE predicate on the "backoff_multiplier" field.
func BackoffMultiplierGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldBackoffMultiplier, v))
}

// BackoffMultiplierLT applies the LT predicate on the "backoff_multiplier" field.
func BackoffMultiplierLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldBackoffMultiplier, v))
}

// BackoffMultiplierLTE applies the LTE predicate on the "backoff_multiplier" field.
func BackoffMultiplierLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldBackoffMultiplier, v))
}

// InitialDelaySecondsEQ applies the EQ predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInitialDelaySeconds, v))
}

// InitialDelaySecondsNEQ applies the NEQ predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldInitialDelaySeconds, v))
}

// InitialDelaySecondsIn applies the In predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldInitialDelaySeconds, vs...))
}

// InitialDelaySecondsNotIn applies the NotIn predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldInitialDelaySeconds, vs...))
}

// InitialDelaySecondsGT applies the GT predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldInitialDelaySeconds, v))
}

// InitialDelaySecondsGTE applies the GTE predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldInitialDelaySeconds, v))
}

// InitialDelaySecondsLT applies the LT predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldInitialDelaySeconds, v))
}

// InitialDelaySecondsLTE applies the LTE predicate on the "initial_delay_seconds" field.
func InitialDelaySecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldInitialDelaySeconds, v))
}

// MaxDelaySecondsEQ applies the EQ predicate on the "max_delay_seconds" field.
func MaxDelaySecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxDelaySeconds, v))
}

// MaxDelaySecondsNEQ applies the NEQ predicate on the "max_delay_seconds" field.
func MaxDelaySecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxDelaySeconds, v))
}

// MaxDelaySecondsIn applies the In predicate on the "max_delay_seconds" field.
func MaxDelaySecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxDelaySeconds, vs...))
}

// MaxDelaySecondsNotIn applies the NotIn predicate on the "max_delay_seconds" field.
func MaxDelaySecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxDelaySeconds, vs...))
}

// MaxDelaySecondsGT applies the GT predicate on the "max_delay_seconds" field.
func MaxDelaySecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxDelaySeconds, v))
}

// MaxDelaySecondsGTE applies the GTE predicate on the "max_delay_seconds" field.
func MaxDelaySecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxDelaySeconds, v))
}

// MaxDelaySecondsLT applies the LT predicate on the "max_delay_seconds" field.
func MaxDelaySecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxDelaySeconds, v))
}

// MaxDelaySecondsLTE applies the LTE predicate on the "max_delay_seconds" field.
func MaxDelaySecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxDelaySeconds, v))
}

// RetryAtEQ applies the EQ predicate on the "retry_at" field.
func RetryAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryAt, v))
}

// RetryAtNEQ applies the NEQ predicate on the "retry_at" field.
func RetryAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRetryAt, v))
}

// RetryAtIn applies the In predicate on the "retry_at" field.
func RetryAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRetryAt, vs...))
}

// RetryAtNotIn applies the NotIn predicate on the "retry_at" field.
func RetryAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRetryAt, vs...))
}

// RetryAtGT applies the GT predicate on the "retry_at" field.
func RetryAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRetryAt, v))
}

// RetryAtGTE applies the GTE predicate on the "retry_at" field.
func RetryAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRetryAt, v))
}

// RetryAtLT applies the LT predicate on the "retry_at" field.
func RetryAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRetryAt, v))
}

// RetryAtLTE applies the LTE predicate on the "retry_at" field.
func RetryAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRetryAt, v))
}

// RetryAtIsNil applies the IsNil predicate on the "retry_at" field.
func RetryAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRetryAt))
}

// RetryAtNotNil applies the NotNil predicate on the "retry_at" field.
func RetryAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRetryAt))
}

// ExecutionTimeoutSecondsEQ applies the EQ predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldExecutionTimeoutSeconds, v))
}

// ExecutionTimeoutSecondsNEQ applies the NEQ predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldExecutionTimeoutSeconds, v))
}

// ExecutionTimeoutSecondsIn applies the In predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldExecutionTimeoutSeconds, vs...))
}

// ExecutionTimeoutSecondsNotIn applies the NotIn predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldExecutionTimeoutSeconds, vs...))
}

// ExecutionTimeoutSecondsGT applies the GT predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldExecutionTimeoutSeconds, v))
}

// ExecutionTimeoutSecondsGTE applies the GTE predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldExecutionTimeoutSeconds, v))
}

// ExecutionTimeoutSecondsLT applies the LT predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldExecutionTimeoutSeconds, v))
}

// ExecutionTimeoutSecondsLTE applies the LTE predicate on the "execution_timeout_seconds" field.
func ExecutionTimeoutSecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldExecutionTimeoutSeconds, v))
}

// HeartbeatIntervalSecondsEQ applies the EQ predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldHeartbeatIntervalSeconds, v))
}

// HeartbeatIntervalSecondsNEQ applies the NEQ predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldHeartbeatIntervalSeconds, v))
}

// HeartbeatIntervalSecondsIn applies the In predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldHeartbeatIntervalSeconds, vs...))
}

// HeartbeatIntervalSecondsNotIn applies the NotIn predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldHeartbeatIntervalSeconds, vs...))
}

// HeartbeatIntervalSecondsGT applies the GT predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldHeartbeatIntervalSeconds, v))
}

// HeartbeatIntervalSecondsGTE applies the GTE predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldHeartbeatIntervalSeconds, v))
}

// HeartbeatIntervalSecondsLT applies the LT predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldHeartbeatIntervalSeconds, v))
}

// HeartbeatIntervalSecondsLTE applies the LTE predicate on the "heartbeat_interval_seconds" field.
func HeartbeatIntervalSecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldHeartbeatIntervalSeconds, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeat))
}

// LogsIsNil applies the IsNil predicate on the "logs" field.
func LogsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLogs))
}

// LogsNotNil applies the NotNil predicate on the "logs" field.
func LogsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLogs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFinishedAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
