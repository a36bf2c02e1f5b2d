// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/accessly/docpipeline/gen/ent/document"
	"github.com/accessly/docpipeline/gen/ent/job"
	"github.com/google/uuid"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *JobCreate) SetDocumentID(v uuid.UUID) *JobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *JobCreate) SetStep(v string) *JobCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v string) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *string) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *JobCreate) SetAttempts(v int) *JobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *JobCreate) SetMaxAttempts(v int) *JobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *JobCreate) SetInput(v json.RawMessage) *JobCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *JobCreate) SetOutput(v json.RawMessage) *JobCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *JobCreate) SetErrorKind(v string) *JobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorKind(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryEnabled sets the "retry_enabled" field.
func (_c *JobCreate) SetRetryEnabled(v bool) *JobCreate {
	_c.mutation.SetRetryEnabled(v)
	return _c
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetryEnabled(v *bool) *JobCreate {
	if v != nil {
		_c.SetRetryEnabled(*v)
	}
	return _c
}

// SetBackoffMultiplier sets the "backoff_multiplier" field.
func (_c *JobCreate) SetBackoffMultiplier(v float64) *JobCreate {
	_c.mutation.SetBackoffMultiplier(v)
	return _c
}

// SetNillableBackoffMultiplier sets the "backoff_multiplier" field if the given value is not nil.
func (_c *JobCreate) SetNillableBackoffMultiplier(v *float64) *JobCreate {
	if v != nil {
		_c.SetBackoffMultiplier(*v)
	}
	return _c
}

// SetInitialDelaySeconds sets the "initial_delay_seconds" field.
func (_c *JobCreate) SetInitialDelaySeconds(v int) *JobCreate {
	_c.mutation.SetInitialDelaySeconds(v)
	return _c
}

// SetNillableInitialDelaySeconds sets the "initial_delay_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableInitialDelaySeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetInitialDelaySeconds(*v)
	}
	return _c
}

// SetMaxDelaySeconds sets the "max_delay_seconds" field.
func (_c *JobCreate) SetMaxDelaySeconds(v int) *JobCreate {
	_c.mutation.SetMaxDelaySeconds(v)
	return _c
}

// SetNillableMaxDelaySeconds sets the "max_delay_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxDelaySeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxDelaySeconds(*v)
	}
	return _c
}

// SetRetryAt sets the "retry_at" field.
func (_c *JobCreate) SetRetryAt(v time.Time) *JobCreate {
	_c.mutation.SetRetryAt(v)
	return _c
}

// SetNillableRetryAt sets the "retry_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetryAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetRetryAt(*v)
	}
	return _c
}

// SetExecutionTimeoutSeconds sets the "execution_timeout_seconds" field.
func (_c *JobCreate) SetExecutionTimeoutSeconds(v int) *JobCreate {
	_c.mutation.SetExecutionTimeoutSeconds(v)
	return _c
}

// SetNillableExecutionTimeoutSeconds sets the "execution_timeout_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableExecutionTimeoutSeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetExecutionTimeoutSeconds(*v)
	}
	return _c
}

// SetHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field.
func (_c *JobCreate) SetHeartbeatIntervalSeconds(v int) *JobCreate {
	_c.mutation.SetHeartbeatIntervalSeconds(v)
	return _c
}

// SetNillableHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableHeartbeatIntervalSeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetHeartbeatIntervalSeconds(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *JobCreate) SetWorkerID(v string) *JobCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkerID(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *JobCreate) SetLastHeartbeat(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeat(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetLogs sets the "logs" field.
func (_c *JobCreate) SetLogs(v json.RawMessage) *JobCreate {
	_c.mutation.SetLogs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *JobCreate) SetFinishedAt(v time.Time) *JobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinishedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v uuid.UUID) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobCreate) SetNillableID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *JobCreate) SetDocument(v *Document) *JobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := job.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := job.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RetryEnabled(); !ok {
		v := job.DefaultRetryEnabled
		_c.mutation.SetRetryEnabled(v)
	}
	if _, ok := _c.mutation.BackoffMultiplier(); !ok {
		v := job.DefaultBackoffMultiplier
		_c.mutation.SetBackoffMultiplier(v)
	}
	if _, ok := _c.mutation.InitialDelaySeconds(); !ok {
		v := job.DefaultInitialDelaySeconds
		_c.mutation.SetInitialDelaySeconds(v)
	}
	if _, ok := _c.mutation.MaxDelaySeconds(); !ok {
		v := job.DefaultMaxDelaySeconds
		_c.mutation.SetMaxDelaySeconds(v)
	}
	if _, ok := _c.mutation.ExecutionTimeoutSeconds(); !ok {
		v := job.DefaultExecutionTimeoutSeconds
		_c.mutation.SetExecutionTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.HeartbeatIntervalSeconds(); !ok {
		v := job.DefaultHeartbeatIntervalSeconds
		_c.mutation.SetHeartbeatIntervalSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := job.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Job.document_id"`)}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "Job.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := job.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Job.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Job.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := job.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "Job.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Job.max_attempts"`)}
	}
	if v, ok := _c.mutation.MaxAttempts(); ok {
		if err := job.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "Job.max_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryEnabled(); !ok {
		return &ValidationError{Name: "retry_enabled", err: errors.New(`ent: missing required field "Job.retry_enabled"`)}
	}
	if _, ok := _c.mutation.BackoffMultiplier(); !ok {
		return &ValidationError{Name: "backoff_multiplier", err: errors.New(`ent: missing required field "Job.backoff_multiplier"`)}
	}
	if _, ok := _c.mutation.InitialDelaySeconds(); !ok {
		return &ValidationError{Name: "initial_delay_seconds", err: errors.New(`ent: missing required field "Job.initial_delay_seconds"`)}
	}
	if _, ok := _c.mutation.MaxDelaySeconds(); !ok {
		return &ValidationError{Name: "max_delay_seconds", err: errors.New(`ent: missing required field "Job.max_delay_seconds"`)}
	}
	if _, ok := _c.mutation.ExecutionTimeoutSeconds(); !ok {
		return &ValidationError{Name: "execution_timeout_seconds", err: errors.New(`ent: missing required field "Job.execution_timeout_seconds"`)}
	}
	if _, ok := _c.mutation.HeartbeatIntervalSeconds(); !ok {
		return &ValidationError{Name: "heartbeat_interval_seconds", err: errors.New(`ent: missing required field "Job.heartbeat_interval_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Job.document"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(job.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(job.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(job.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryEnabled(); ok {
		_spec.SetField(job.FieldRetryEnabled, field.TypeBool, value)
		_node.RetryEnabled = value
	}
	if value, ok := _c.mutation.BackoffMultiplier(); ok {
		_spec.SetField(job.FieldBackoffMultiplier, field.TypeFloat64, value)
		_node.BackoffMultiplier = value
	}
	if value, ok := _c.mutation.InitialDelaySeconds(); ok {
		_spec.SetField(job.FieldInitialDelaySeconds, field.TypeInt, value)
		_node.InitialDelaySeconds = value
	}
	if value, ok := _c.mutation.MaxDelaySeconds(); ok {
		_spec.SetField(job.FieldMaxDelaySeconds, field.TypeInt, value)
		_node.MaxDelaySeconds = value
	}
	if value, ok := _c.mutation.RetryAt(); ok {
		_spec.SetField(job.FieldRetryAt, field.TypeTime, value)
		_node.RetryAt = &value
	}
	if value, ok := _c.mutation.ExecutionTimeoutSeconds(); ok {
		_spec.SetField(job.FieldExecutionTimeoutSeconds, field.TypeInt, value)
		_node.ExecutionTimeoutSeconds = value
	}
	if value, ok := _c.mutation.HeartbeatIntervalSeconds(); ok {
		_spec.SetField(job.FieldHeartbeatIntervalSeconds, field.TypeInt, value)
		_node.HeartbeatIntervalSeconds = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.Logs(); ok {
		_spec.SetField(job.FieldLogs, field.TypeJSON, value)
		_node.Logs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
