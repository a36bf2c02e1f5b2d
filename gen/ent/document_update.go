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

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DocumentUpdate) SetOwnerID(v string) *DocumentUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOwnerID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentUpdate) SetSourceURL(v string) *DocumentUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentUpdate) ClearSourceURL() *DocumentUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// ClearSourcePath clears the value of the "source_path" field.
func (_u *DocumentUpdate) ClearSourcePath() *DocumentUpdate {
	_u.mutation.ClearSourcePath()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdate) SetContentType(v string) *DocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdate) ClearContentType() *DocumentUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DocumentUpdate) SetMetadata(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *DocumentUpdate) AppendMetadata(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DocumentUpdate) ClearMetadata() *DocumentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *DocumentUpdate) SetArtifacts(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *DocumentUpdate) AppendArtifacts(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *DocumentUpdate) ClearArtifacts() *DocumentUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetScores sets the "scores" field.
func (_u *DocumentUpdate) SetScores(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *DocumentUpdate) AppendScores(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *DocumentUpdate) ClearScores() *DocumentUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *DocumentUpdate) SetIssues(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *DocumentUpdate) AppendIssues(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *DocumentUpdate) ClearIssues() *DocumentUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetStepPlan sets the "step_plan" field.
func (_u *DocumentUpdate) SetStepPlan(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetStepPlan(v)
	return _u
}

// AppendStepPlan appends value to the "step_plan" field.
func (_u *DocumentUpdate) AppendStepPlan(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendStepPlan(v)
	return _u
}

// ClearStepPlan clears the value of the "step_plan" field.
func (_u *DocumentUpdate) ClearStepPlan() *DocumentUpdate {
	_u.mutation.ClearStepPlan()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *DocumentUpdate) SetCancelled(v bool) *DocumentUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCancelled(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DocumentUpdate) SetCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DocumentUpdate) ClearCompletedAt() *DocumentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *DocumentUpdate) AddJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *DocumentUpdate) AddJobs(v ...*Job) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *DocumentUpdate) ClearJobs() *DocumentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *DocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *DocumentUpdate) RemoveJobs(v ...*Job) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := document.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Document.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(document.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(document.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if _u.mutation.SourcePathCleared() {
		_spec.ClearField(document.FieldSourcePath, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(document.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(document.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(document.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldScores, value)
		})
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(document.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(document.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(document.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepPlan(); ok {
		_spec.SetField(document.FieldStepPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStepPlan, value)
		})
	}
	if _u.mutation.StepPlanCleared() {
		_spec.ClearField(document.FieldStepPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(document.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(document.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(document.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *DocumentUpdateOne) SetOwnerID(v string) *DocumentUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOwnerID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentUpdateOne) SetSourceURL(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentUpdateOne) ClearSourceURL() *DocumentUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// ClearSourcePath clears the value of the "source_path" field.
func (_u *DocumentUpdateOne) ClearSourcePath() *DocumentUpdateOne {
	_u.mutation.ClearSourcePath()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdateOne) SetContentType(v string) *DocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdateOne) ClearContentType() *DocumentUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DocumentUpdateOne) SetMetadata(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *DocumentUpdateOne) AppendMetadata(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DocumentUpdateOne) ClearMetadata() *DocumentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *DocumentUpdateOne) SetArtifacts(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *DocumentUpdateOne) AppendArtifacts(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *DocumentUpdateOne) ClearArtifacts() *DocumentUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetScores sets the "scores" field.
func (_u *DocumentUpdateOne) SetScores(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *DocumentUpdateOne) AppendScores(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *DocumentUpdateOne) ClearScores() *DocumentUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *DocumentUpdateOne) SetIssues(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *DocumentUpdateOne) AppendIssues(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *DocumentUpdateOne) ClearIssues() *DocumentUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetStepPlan sets the "step_plan" field.
func (_u *DocumentUpdateOne) SetStepPlan(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetStepPlan(v)
	return _u
}

// AppendStepPlan appends value to the "step_plan" field.
func (_u *DocumentUpdateOne) AppendStepPlan(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendStepPlan(v)
	return _u
}

// ClearStepPlan clears the value of the "step_plan" field.
func (_u *DocumentUpdateOne) ClearStepPlan() *DocumentUpdateOne {
	_u.mutation.ClearStepPlan()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *DocumentUpdateOne) SetCancelled(v bool) *DocumentUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCancelled(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DocumentUpdateOne) SetCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DocumentUpdateOne) ClearCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *DocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *DocumentUpdateOne) AddJobs(v ...*Job) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *DocumentUpdateOne) ClearJobs() *DocumentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *DocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *DocumentUpdateOne) RemoveJobs(v ...*Job) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := document.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Document.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(document.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(document.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if _u.mutation.SourcePathCleared() {
		_spec.ClearField(document.FieldSourcePath, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(document.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(document.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(document.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldScores, value)
		})
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(document.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(document.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(document.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepPlan(); ok {
		_spec.SetField(document.FieldStepPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStepPlan, value)
		})
	}
	if _u.mutation.StepPlanCleared() {
		_spec.ClearField(document.FieldStepPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(document.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(document.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(document.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
