// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/accessly/docpipeline/gen/ent/document"
	"github.com/accessly/docpipeline/gen/ent/job"
	"github.com/accessly/docpipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *JobUpdate) SetDocumentID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDocumentID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *JobUpdate) SetStep(v string) *JobUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStep(v *string) *JobUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v int) *JobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *int) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdate) AddPriority(v int) *JobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdate) SetAttempts(v int) *JobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdate) AddAttempts(v int) *JobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdate) SetMaxAttempts(v int) *JobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdate) AddMaxAttempts(v int) *JobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *JobUpdate) SetInput(v json.RawMessage) *JobUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// AppendInput appends value to the "input" field.
func (_u *JobUpdate) AppendInput(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *JobUpdate) ClearInput() *JobUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobUpdate) SetOutput(v json.RawMessage) *JobUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *JobUpdate) AppendOutput(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobUpdate) ClearOutput() *JobUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *JobUpdate) SetErrorKind(v string) *JobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorKind(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *JobUpdate) ClearErrorKind() *JobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryEnabled sets the "retry_enabled" field.
func (_u *JobUpdate) SetRetryEnabled(v bool) *JobUpdate {
	_u.mutation.SetRetryEnabled(v)
	return _u
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryEnabled(v *bool) *JobUpdate {
	if v != nil {
		_u.SetRetryEnabled(*v)
	}
	return _u
}

// SetBackoffMultiplier sets the "backoff_multiplier" field.
func (_u *JobUpdate) SetBackoffMultiplier(v float64) *JobUpdate {
	_u.mutation.ResetBackoffMultiplier()
	_u.mutation.SetBackoffMultiplier(v)
	return _u
}

// SetNillableBackoffMultiplier sets the "backoff_multiplier" field if the given value is not nil.
func (_u *JobUpdate) SetNillableBackoffMultiplier(v *float64) *JobUpdate {
	if v != nil {
		_u.SetBackoffMultiplier(*v)
	}
	return _u
}

// AddBackoffMultiplier adds value to the "backoff_multiplier" field.
func (_u *JobUpdate) AddBackoffMultiplier(v float64) *JobUpdate {
	_u.mutation.AddBackoffMultiplier(v)
	return _u
}

// SetInitialDelaySeconds sets the "initial_delay_seconds" field.
func (_u *JobUpdate) SetInitialDelaySeconds(v int) *JobUpdate {
	_u.mutation.ResetInitialDelaySeconds()
	_u.mutation.SetInitialDelaySeconds(v)
	return _u
}

// SetNillableInitialDelaySeconds sets the "initial_delay_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableInitialDelaySeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetInitialDelaySeconds(*v)
	}
	return _u
}

// AddInitialDelaySeconds adds value to the "initial_delay_seconds" field.
func (_u *JobUpdate) AddInitialDelaySeconds(v int) *JobUpdate {
	_u.mutation.AddInitialDelaySeconds(v)
	return _u
}

// SetMaxDelaySeconds sets the "max_delay_seconds" field.
func (_u *JobUpdate) SetMaxDelaySeconds(v int) *JobUpdate {
	_u.mutation.ResetMaxDelaySeconds()
	_u.mutation.SetMaxDelaySeconds(v)
	return _u
}

// SetNillableMaxDelaySeconds sets the "max_delay_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxDelaySeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxDelaySeconds(*v)
	}
	return _u
}

// AddMaxDelaySeconds adds value to the "max_delay_seconds" field.
func (_u *JobUpdate) AddMaxDelaySeconds(v int) *JobUpdate {
	_u.mutation.AddMaxDelaySeconds(v)
	return _u
}

// SetRetryAt sets the "retry_at" field.
func (_u *JobUpdate) SetRetryAt(v time.Time) *JobUpdate {
	_u.mutation.SetRetryAt(v)
	return _u
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetRetryAt(*v)
	}
	return _u
}

// ClearRetryAt clears the value of the "retry_at" field.
func (_u *JobUpdate) ClearRetryAt() *JobUpdate {
	_u.mutation.ClearRetryAt()
	return _u
}

// SetExecutionTimeoutSeconds sets the "execution_timeout_seconds" field.
func (_u *JobUpdate) SetExecutionTimeoutSeconds(v int) *JobUpdate {
	_u.mutation.ResetExecutionTimeoutSeconds()
	_u.mutation.SetExecutionTimeoutSeconds(v)
	return _u
}

// SetNillableExecutionTimeoutSeconds sets the "execution_timeout_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableExecutionTimeoutSeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetExecutionTimeoutSeconds(*v)
	}
	return _u
}

// AddExecutionTimeoutSeconds adds value to the "execution_timeout_seconds" field.
func (_u *JobUpdate) AddExecutionTimeoutSeconds(v int) *JobUpdate {
	_u.mutation.AddExecutionTimeoutSeconds(v)
	return _u
}

// SetHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field.
func (_u *JobUpdate) SetHeartbeatIntervalSeconds(v int) *JobUpdate {
	_u.mutation.ResetHeartbeatIntervalSeconds()
	_u.mutation.SetHeartbeatIntervalSeconds(v)
	return _u
}

// SetNillableHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableHeartbeatIntervalSeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetHeartbeatIntervalSeconds(*v)
	}
	return _u
}

// AddHeartbeatIntervalSeconds adds value to the "heartbeat_interval_seconds" field.
func (_u *JobUpdate) AddHeartbeatIntervalSeconds(v int) *JobUpdate {
	_u.mutation.AddHeartbeatIntervalSeconds(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdate) SetLastHeartbeat(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeat(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdate) ClearLastHeartbeat() *JobUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *JobUpdate) SetLogs(v json.RawMessage) *JobUpdate {
	_u.mutation.SetLogs(v)
	return _u
}

// AppendLogs appends value to the "logs" field.
func (_u *JobUpdate) AppendLogs(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendLogs(v)
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *JobUpdate) ClearLogs() *JobUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdate) SetFinishedAt(v time.Time) *JobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinishedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdate) ClearFinishedAt() *JobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *JobUpdate) SetDocument(v *Document) *JobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *JobUpdate) ClearDocument() *JobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := job.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Job.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := job.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "Job.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAttempts(); ok {
		if err := job.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "Job.max_attempts": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.document"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(job.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(job.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldInput, value)
		})
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(job.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(job.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(job.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(job.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryEnabled(); ok {
		_spec.SetField(job.FieldRetryEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BackoffMultiplier(); ok {
		_spec.SetField(job.FieldBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBackoffMultiplier(); ok {
		_spec.AddField(job.FieldBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialDelaySeconds(); ok {
		_spec.SetField(job.FieldInitialDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialDelaySeconds(); ok {
		_spec.AddField(job.FieldInitialDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDelaySeconds(); ok {
		_spec.SetField(job.FieldMaxDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDelaySeconds(); ok {
		_spec.AddField(job.FieldMaxDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAt(); ok {
		_spec.SetField(job.FieldRetryAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAtCleared() {
		_spec.ClearField(job.FieldRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeoutSeconds(); ok {
		_spec.SetField(job.FieldExecutionTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeoutSeconds(); ok {
		_spec.AddField(job.FieldExecutionTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartbeatIntervalSeconds(); ok {
		_spec.SetField(job.FieldHeartbeatIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatIntervalSeconds(); ok {
		_spec.AddField(job.FieldHeartbeatIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(job.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldLogs, value)
		})
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(job.FieldLogs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DocumentTable,
			Columns: []string{job.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DocumentTable,
			Columns: []string{job.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *JobUpdateOne) SetDocumentID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *JobUpdateOne) SetStep(v string) *JobUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStep(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v int) *JobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdateOne) AddPriority(v int) *JobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdateOne) SetAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdateOne) AddAttempts(v int) *JobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdateOne) SetMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdateOne) AddMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *JobUpdateOne) SetInput(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// AppendInput appends value to the "input" field.
func (_u *JobUpdateOne) AppendInput(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *JobUpdateOne) ClearInput() *JobUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobUpdateOne) SetOutput(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *JobUpdateOne) AppendOutput(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobUpdateOne) ClearOutput() *JobUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *JobUpdateOne) SetErrorKind(v string) *JobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorKind(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *JobUpdateOne) ClearErrorKind() *JobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryEnabled sets the "retry_enabled" field.
func (_u *JobUpdateOne) SetRetryEnabled(v bool) *JobUpdateOne {
	_u.mutation.SetRetryEnabled(v)
	return _u
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryEnabled(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetRetryEnabled(*v)
	}
	return _u
}

// SetBackoffMultiplier sets the "backoff_multiplier" field.
func (_u *JobUpdateOne) SetBackoffMultiplier(v float64) *JobUpdateOne {
	_u.mutation.ResetBackoffMultiplier()
	_u.mutation.SetBackoffMultiplier(v)
	return _u
}

// SetNillableBackoffMultiplier sets the "backoff_multiplier" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableBackoffMultiplier(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetBackoffMultiplier(*v)
	}
	return _u
}

// AddBackoffMultiplier adds value to the "backoff_multiplier" field.
func (_u *JobUpdateOne) AddBackoffMultiplier(v float64) *JobUpdateOne {
	_u.mutation.AddBackoffMultiplier(v)
	return _u
}

// SetInitialDelaySeconds sets the "initial_delay_seconds" field.
func (_u *JobUpdateOne) SetInitialDelaySeconds(v int) *JobUpdateOne {
	_u.mutation.ResetInitialDelaySeconds()
	_u.mutation.SetInitialDelaySeconds(v)
	return _u
}

// SetNillableInitialDelaySeconds sets the "initial_delay_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableInitialDelaySeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetInitialDelaySeconds(*v)
	}
	return _u
}

// AddInitialDelaySeconds adds value to the "initial_delay_seconds" field.
func (_u *JobUpdateOne) AddInitialDelaySeconds(v int) *JobUpdateOne {
	_u.mutation.AddInitialDelaySeconds(v)
	return _u
}

// SetMaxDelaySeconds sets the "max_delay_seconds" field.
func (_u *JobUpdateOne) SetMaxDelaySeconds(v int) *JobUpdateOne {
	_u.mutation.ResetMaxDelaySeconds()
	_u.mutation.SetMaxDelaySeconds(v)
	return _u
}

// SetNillableMaxDelaySeconds sets the "max_delay_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxDelaySeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxDelaySeconds(*v)
	}
	return _u
}

// AddMaxDelaySeconds adds value to the "max_delay_seconds" field.
func (_u *JobUpdateOne) AddMaxDelaySeconds(v int) *JobUpdateOne {
	_u.mutation.AddMaxDelaySeconds(v)
	return _u
}

// SetRetryAt sets the "retry_at" field.
func (_u *JobUpdateOne) SetRetryAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetRetryAt(v)
	return _u
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetRetryAt(*v)
	}
	return _u
}

// ClearRetryAt clears the value of the "retry_at" field.
func (_u *JobUpdateOne) ClearRetryAt() *JobUpdateOne {
	_u.mutation.ClearRetryAt()
	return _u
}

// SetExecutionTimeoutSeconds sets the "execution_timeout_seconds" field.
func (_u *JobUpdateOne) SetExecutionTimeoutSeconds(v int) *JobUpdateOne {
	_u.mutation.ResetExecutionTimeoutSeconds()
	_u.mutation.SetExecutionTimeoutSeconds(v)
	return _u
}

// SetNillableExecutionTimeoutSeconds sets the "execution_timeout_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableExecutionTimeoutSeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetExecutionTimeoutSeconds(*v)
	}
	return _u
}

// AddExecutionTimeoutSeconds adds value to the "execution_timeout_seconds" field.
func (_u *JobUpdateOne) AddExecutionTimeoutSeconds(v int) *JobUpdateOne {
	_u.mutation.AddExecutionTimeoutSeconds(v)
	return _u
}

// SetHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field.
func (_u *JobUpdateOne) SetHeartbeatIntervalSeconds(v int) *JobUpdateOne {
	_u.mutation.ResetHeartbeatIntervalSeconds()
	_u.mutation.SetHeartbeatIntervalSeconds(v)
	return _u
}

// SetNillableHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableHeartbeatIntervalSeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetHeartbeatIntervalSeconds(*v)
	}
	return _u
}

// AddHeartbeatIntervalSeconds adds value to the "heartbeat_interval_seconds" field.
func (_u *JobUpdateOne) AddHeartbeatIntervalSeconds(v int) *JobUpdateOne {
	_u.mutation.AddHeartbeatIntervalSeconds(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdateOne) SetLastHeartbeat(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeat(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdateOne) ClearLastHeartbeat() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *JobUpdateOne) SetLogs(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetLogs(v)
	return _u
}

// AppendLogs appends value to the "logs" field.
func (_u *JobUpdateOne) AppendLogs(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendLogs(v)
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *JobUpdateOne) ClearLogs() *JobUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdateOne) SetFinishedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinishedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdateOne) ClearFinishedAt() *JobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *JobUpdateOne) SetDocument(v *Document) *JobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *JobUpdateOne) ClearDocument() *JobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Step(); ok {
		if err := job.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Job.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := job.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "Job.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAttempts(); ok {
		if err := job.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "Job.max_attempts": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.document"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(job.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(job.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldInput, value)
		})
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(job.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(job.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(job.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(job.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryEnabled(); ok {
		_spec.SetField(job.FieldRetryEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BackoffMultiplier(); ok {
		_spec.SetField(job.FieldBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBackoffMultiplier(); ok {
		_spec.AddField(job.FieldBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialDelaySeconds(); ok {
		_spec.SetField(job.FieldInitialDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialDelaySeconds(); ok {
		_spec.AddField(job.FieldInitialDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDelaySeconds(); ok {
		_spec.SetField(job.FieldMaxDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDelaySeconds(); ok {
		_spec.AddField(job.FieldMaxDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAt(); ok {
		_spec.SetField(job.FieldRetryAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAtCleared() {
		_spec.ClearField(job.FieldRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeoutSeconds(); ok {
		_spec.SetField(job.FieldExecutionTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeoutSeconds(); ok {
		_spec.AddField(job.FieldExecutionTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartbeatIntervalSeconds(); ok {
		_spec.SetField(job.FieldHeartbeatIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatIntervalSeconds(); ok {
		_spec.AddField(job.FieldHeartbeatIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(job.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldLogs, value)
		})
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(job.FieldLogs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DocumentTable,
			Columns: []string{job.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DocumentTable,
			Columns: []string{job.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
