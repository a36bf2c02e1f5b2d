// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/accessly/docpipeline/gen/ent/document"
	"github.com/accessly/docpipeline/gen/ent/job"
	"github.com/accessly/docpipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument = "Document"
	TypeJob      = "Job"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *string
	status          *string
	filename        *string
	source_url      *string
	source_path     *string
	content_type    *string
	metadata        *json.RawMessage
	appendmetadata  json.RawMessage
	artifacts       *json.RawMessage
	appendartifacts json.RawMessage
	scores          *json.RawMessage
	appendscores    json.RawMessage
	issues          *json.RawMessage
	appendissues    json.RawMessage
	step_plan       *json.RawMessage
	appendstep_plan json.RawMessage
	cancelled       *bool
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Document, error)
	predicates      []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *DocumentMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *DocumentMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *DocumentMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetSourceURL sets the "source_url" field.
func (m *DocumentMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *DocumentMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *DocumentMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[document.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *DocumentMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[document.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *DocumentMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, document.FieldSourceURL)
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ClearSourcePath clears the value of the "source_path" field.
func (m *DocumentMutation) ClearSourcePath() {
	m.source_path = nil
	m.clearedFields[document.FieldSourcePath] = struct{}{}
}

// SourcePathCleared returns if the "source_path" field was cleared in this mutation.
func (m *DocumentMutation) SourcePathCleared() bool {
	_, ok := m.clearedFields[document.FieldSourcePath]
	return ok
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
	delete(m.clearedFields, document.FieldSourcePath)
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *DocumentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[document.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *DocumentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, document.FieldContentType)
}

// SetMetadata sets the "metadata" field.
func (m *DocumentMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *DocumentMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *DocumentMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *DocumentMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *DocumentMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[document.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *DocumentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[document.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *DocumentMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, document.FieldMetadata)
}

// SetArtifacts sets the "artifacts" field.
func (m *DocumentMutation) SetArtifacts(jm json.RawMessage) {
	m.artifacts = &jm
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *DocumentMutation) Artifacts() (r json.RawMessage, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldArtifacts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds jm to the "artifacts" field.
func (m *DocumentMutation) AppendArtifacts(jm json.RawMessage) {
	m.appendartifacts = append(m.appendartifacts, jm...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *DocumentMutation) AppendedArtifacts() (json.RawMessage, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *DocumentMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[document.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *DocumentMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[document.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *DocumentMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, document.FieldArtifacts)
}

// SetScores sets the "scores" field.
func (m *DocumentMutation) SetScores(jm json.RawMessage) {
	m.scores = &jm
	m.appendscores = nil
}

// Scores returns the value of the "scores" field in the mutation.
func (m *DocumentMutation) Scores() (r json.RawMessage, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldScores(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// AppendScores adds jm to the "scores" field.
func (m *DocumentMutation) AppendScores(jm json.RawMessage) {
	m.appendscores = append(m.appendscores, jm...)
}

// AppendedScores returns the list of values that were appended to the "scores" field in this mutation.
func (m *DocumentMutation) AppendedScores() (json.RawMessage, bool) {
	if len(m.appendscores) == 0 {
		return nil, false
	}
	return m.appendscores, true
}

// ClearScores clears the value of the "scores" field.
func (m *DocumentMutation) ClearScores() {
	m.scores = nil
	m.appendscores = nil
	m.clearedFields[document.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *DocumentMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[document.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *DocumentMutation) ResetScores() {
	m.scores = nil
	m.appendscores = nil
	delete(m.clearedFields, document.FieldScores)
}

// SetIssues sets the "issues" field.
func (m *DocumentMutation) SetIssues(jm json.RawMessage) {
	m.issues = &jm
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *DocumentMutation) Issues() (r json.RawMessage, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIssues(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds jm to the "issues" field.
func (m *DocumentMutation) AppendIssues(jm json.RawMessage) {
	m.appendissues = append(m.appendissues, jm...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *DocumentMutation) AppendedIssues() (json.RawMessage, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *DocumentMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[document.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *DocumentMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[document.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *DocumentMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, document.FieldIssues)
}

// SetStepPlan sets the "step_plan" field.
func (m *DocumentMutation) SetStepPlan(jm json.RawMessage) {
	m.step_plan = &jm
	m.appendstep_plan = nil
}

// StepPlan returns the value of the "step_plan" field in the mutation.
func (m *DocumentMutation) StepPlan() (r json.RawMessage, exists bool) {
	v := m.step_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldStepPlan returns the old "step_plan" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStepPlan(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepPlan: %w", err)
	}
	return oldValue.StepPlan, nil
}

// AppendStepPlan adds jm to the "step_plan" field.
func (m *DocumentMutation) AppendStepPlan(jm json.RawMessage) {
	m.appendstep_plan = append(m.appendstep_plan, jm...)
}

// AppendedStepPlan returns the list of values that were appended to the "step_plan" field in this mutation.
func (m *DocumentMutation) AppendedStepPlan() (json.RawMessage, bool) {
	if len(m.appendstep_plan) == 0 {
		return nil, false
	}
	return m.appendstep_plan, true
}

// ClearStepPlan clears the value of the "step_plan" field.
func (m *DocumentMutation) ClearStepPlan() {
	m.step_plan = nil
	m.appendstep_plan = nil
	m.clearedFields[document.FieldStepPlan] = struct{}{}
}

// StepPlanCleared returns if the "step_plan" field was cleared in this mutation.
func (m *DocumentMutation) StepPlanCleared() bool {
	_, ok := m.clearedFields[document.FieldStepPlan]
	return ok
}

// ResetStepPlan resets all changes to the "step_plan" field.
func (m *DocumentMutation) ResetStepPlan() {
	m.step_plan = nil
	m.appendstep_plan = nil
	delete(m.clearedFields, document.FieldStepPlan)
}

// SetCancelled sets the "cancelled" field.
func (m *DocumentMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *DocumentMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *DocumentMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DocumentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DocumentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DocumentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[document.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DocumentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DocumentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, document.FieldCompletedAt)
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.owner_id != nil {
		fields = append(fields, document.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.source_url != nil {
		fields = append(fields, document.FieldSourceURL)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.metadata != nil {
		fields = append(fields, document.FieldMetadata)
	}
	if m.artifacts != nil {
		fields = append(fields, document.FieldArtifacts)
	}
	if m.scores != nil {
		fields = append(fields, document.FieldScores)
	}
	if m.issues != nil {
		fields = append(fields, document.FieldIssues)
	}
	if m.step_plan != nil {
		fields = append(fields, document.FieldStepPlan)
	}
	if m.cancelled != nil {
		fields = append(fields, document.FieldCancelled)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, document.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOwnerID:
		return m.OwnerID()
	case document.FieldStatus:
		return m.Status()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldSourceURL:
		return m.SourceURL()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldMetadata:
		return m.Metadata()
	case document.FieldArtifacts:
		return m.Artifacts()
	case document.FieldScores:
		return m.Scores()
	case document.FieldIssues:
		return m.Issues()
	case document.FieldStepPlan:
		return m.StepPlan()
	case document.FieldCancelled:
		return m.Cancelled()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldMetadata:
		return m.OldMetadata(ctx)
	case document.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case document.FieldScores:
		return m.OldScores(ctx)
	case document.FieldIssues:
		return m.OldIssues(ctx)
	case document.FieldStepPlan:
		return m.OldStepPlan(ctx)
	case document.FieldCancelled:
		return m.OldCancelled(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case document.FieldArtifacts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case document.FieldScores:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case document.FieldIssues:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case document.FieldStepPlan:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepPlan(v)
		return nil
	case document.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSourceURL) {
		fields = append(fields, document.FieldSourceURL)
	}
	if m.FieldCleared(document.FieldSourcePath) {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.FieldCleared(document.FieldContentType) {
		fields = append(fields, document.FieldContentType)
	}
	if m.FieldCleared(document.FieldMetadata) {
		fields = append(fields, document.FieldMetadata)
	}
	if m.FieldCleared(document.FieldArtifacts) {
		fields = append(fields, document.FieldArtifacts)
	}
	if m.FieldCleared(document.FieldScores) {
		fields = append(fields, document.FieldScores)
	}
	if m.FieldCleared(document.FieldIssues) {
		fields = append(fields, document.FieldIssues)
	}
	if m.FieldCleared(document.FieldStepPlan) {
		fields = append(fields, document.FieldStepPlan)
	}
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldCompletedAt) {
		fields = append(fields, document.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case document.FieldSourcePath:
		m.ClearSourcePath()
		return nil
	case document.FieldContentType:
		m.ClearContentType()
		return nil
	case document.FieldMetadata:
		m.ClearMetadata()
		return nil
	case document.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case document.FieldScores:
		m.ClearScores()
		return nil
	case document.FieldIssues:
		m.ClearIssues()
		return nil
	case document.FieldStepPlan:
		m.ClearStepPlan()
		return nil
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldMetadata:
		m.ResetMetadata()
		return nil
	case document.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case document.FieldScores:
		m.ResetScores()
		return nil
	case document.FieldIssues:
		m.ResetIssues()
		return nil
	case document.FieldStepPlan:
		m.ResetStepPlan()
		return nil
	case document.FieldCancelled:
		m.ResetCancelled()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	step                          *string
	status                        *string
	priority                      *int
	addpriority                   *int
	attempts                      *int
	addattempts                   *int
	max_attempts                  *int
	addmax_attempts               *int
	input                         *json.RawMessage
	appendinput                   json.RawMessage
	output                        *json.RawMessage
	appendoutput                  json.RawMessage
	error_kind                    *string
	error_message                 *string
	retry_enabled                 *bool
	backoff_multiplier            *float64
	addbackoff_multiplier         *float64
	initial_delay_seconds         *int
	addinitial_delay_seconds      *int
	max_delay_seconds             *int
	addmax_delay_seconds          *int
	retry_at                      *time.Time
	execution_timeout_seconds     *int
	addexecution_timeout_seconds  *int
	heartbeat_interval_seconds    *int
	addheartbeat_interval_seconds *int
	worker_id                     *string
	started_at                    *time.Time
	last_heartbeat                *time.Time
	logs                          *json.RawMessage
	appendlogs                    json.RawMessage
	created_at                    *time.Time
	updated_at                    *time.Time
	finished_at                   *time.Time
	clearedFields                 map[string]struct{}
	document                      *uuid.UUID
	cleareddocument               bool
	done                          bool
	oldValue                      func(context.Context) (*Job, error)
	predicates                    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *JobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *JobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *JobMutation) ResetDocumentID() {
	m.document = nil
}

// SetStep sets the "step" field.
func (m *JobMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *JobMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *JobMutation) ResetStep() {
	m.step = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetInput sets the "input" field.
func (m *JobMutation) SetInput(jm json.RawMessage) {
	m.input = &jm
	m.appendinput = nil
}

// Input returns the value of the "input" field in the mutation.
func (m *JobMutation) Input() (r json.RawMessage, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// AppendInput adds jm to the "input" field.
func (m *JobMutation) AppendInput(jm json.RawMessage) {
	m.appendinput = append(m.appendinput, jm...)
}

// AppendedInput returns the list of values that were appended to the "input" field in this mutation.
func (m *JobMutation) AppendedInput() (json.RawMessage, bool) {
	if len(m.appendinput) == 0 {
		return nil, false
	}
	return m.appendinput, true
}

// ClearInput clears the value of the "input" field.
func (m *JobMutation) ClearInput() {
	m.input = nil
	m.appendinput = nil
	m.clearedFields[job.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *JobMutation) InputCleared() bool {
	_, ok := m.clearedFields[job.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *JobMutation) ResetInput() {
	m.input = nil
	m.appendinput = nil
	delete(m.clearedFields, job.FieldInput)
}

// SetOutput sets the "output" field.
func (m *JobMutation) SetOutput(jm json.RawMessage) {
	m.output = &jm
	m.appendoutput = nil
}

// Output returns the value of the "output" field in the mutation.
func (m *JobMutation) Output() (r json.RawMessage, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// AppendOutput adds jm to the "output" field.
func (m *JobMutation) AppendOutput(jm json.RawMessage) {
	m.appendoutput = append(m.appendoutput, jm...)
}

// AppendedOutput returns the list of values that were appended to the "output" field in this mutation.
func (m *JobMutation) AppendedOutput() (json.RawMessage, bool) {
	if len(m.appendoutput) == 0 {
		return nil, false
	}
	return m.appendoutput, true
}

// ClearOutput clears the value of the "output" field.
func (m *JobMutation) ClearOutput() {
	m.output = nil
	m.appendoutput = nil
	m.clearedFields[job.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *JobMutation) OutputCleared() bool {
	_, ok := m.clearedFields[job.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *JobMutation) ResetOutput() {
	m.output = nil
	m.appendoutput = nil
	delete(m.clearedFields, job.FieldOutput)
}

// SetErrorKind sets the "error_kind" field.
func (m *JobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *JobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *JobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[job.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *JobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *JobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, job.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetRetryEnabled sets the "retry_enabled" field.
func (m *JobMutation) SetRetryEnabled(b bool) {
	m.retry_enabled = &b
}

// RetryEnabled returns the value of the "retry_enabled" field in the mutation.
func (m *JobMutation) RetryEnabled() (r bool, exists bool) {
	v := m.retry_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryEnabled returns the old "retry_enabled" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryEnabled: %w", err)
	}
	return oldValue.RetryEnabled, nil
}

// ResetRetryEnabled resets all changes to the "retry_enabled" field.
func (m *JobMutation) ResetRetryEnabled() {
	m.retry_enabled = nil
}

// SetBackoffMultiplier sets the "backoff_multiplier" field.
func (m *JobMutation) SetBackoffMultiplier(f float64) {
	m.backoff_multiplier = &f
	m.addbackoff_multiplier = nil
}

// BackoffMultiplier returns the value of the "backoff_multiplier" field in the mutation.
func (m *JobMutation) BackoffMultiplier() (r float64, exists bool) {
	v := m.backoff_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffMultiplier returns the old "backoff_multiplier" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldBackoffMultiplier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffMultiplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffMultiplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffMultiplier: %w", err)
	}
	return oldValue.BackoffMultiplier, nil
}

// AddBackoffMultiplier adds f to the "backoff_multiplier" field.
func (m *JobMutation) AddBackoffMultiplier(f float64) {
	if m.addbackoff_multiplier != nil {
		*m.addbackoff_multiplier += f
	} else {
		m.addbackoff_multiplier = &f
	}
}

// AddedBackoffMultiplier returns the value that was added to the "backoff_multiplier" field in this mutation.
func (m *JobMutation) AddedBackoffMultiplier() (r float64, exists bool) {
	v := m.addbackoff_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffMultiplier resets all changes to the "backoff_multiplier" field.
func (m *JobMutation) ResetBackoffMultiplier() {
	m.backoff_multiplier = nil
	m.addbackoff_multiplier = nil
}

// SetInitialDelaySeconds sets the "initial_delay_seconds" field.
func (m *JobMutation) SetInitialDelaySeconds(i int) {
	m.initial_delay_seconds = &i
	m.addinitial_delay_seconds = nil
}

// InitialDelaySeconds returns the value of the "initial_delay_seconds" field in the mutation.
func (m *JobMutation) InitialDelaySeconds() (r int, exists bool) {
	v := m.initial_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialDelaySeconds returns the old "initial_delay_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInitialDelaySeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialDelaySeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialDelaySeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialDelaySeconds: %w", err)
	}
	return oldValue.InitialDelaySeconds, nil
}

// AddInitialDelaySeconds adds i to the "initial_delay_seconds" field.
func (m *JobMutation) AddInitialDelaySeconds(i int) {
	if m.addinitial_delay_seconds != nil {
		*m.addinitial_delay_seconds += i
	} else {
		m.addinitial_delay_seconds = &i
	}
}

// AddedInitialDelaySeconds returns the value that was added to the "initial_delay_seconds" field in this mutation.
func (m *JobMutation) AddedInitialDelaySeconds() (r int, exists bool) {
	v := m.addinitial_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetInitialDelaySeconds resets all changes to the "initial_delay_seconds" field.
func (m *JobMutation) ResetInitialDelaySeconds() {
	m.initial_delay_seconds = nil
	m.addinitial_delay_seconds = nil
}

// SetMaxDelaySeconds sets the "max_delay_seconds" field.
func (m *JobMutation) SetMaxDelaySeconds(i int) {
	m.max_delay_seconds = &i
	m.addmax_delay_seconds = nil
}

// MaxDelaySeconds returns the value of the "max_delay_seconds" field in the mutation.
func (m *JobMutation) MaxDelaySeconds() (r int, exists bool) {
	v := m.max_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDelaySeconds returns the old "max_delay_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxDelaySeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDelaySeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDelaySeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDelaySeconds: %w", err)
	}
	return oldValue.MaxDelaySeconds, nil
}

// AddMaxDelaySeconds adds i to the "max_delay_seconds" field.
func (m *JobMutation) AddMaxDelaySeconds(i int) {
	if m.addmax_delay_seconds != nil {
		*m.addmax_delay_seconds += i
	} else {
		m.addmax_delay_seconds = &i
	}
}

// AddedMaxDelaySeconds returns the value that was added to the "max_delay_seconds" field in this mutation.
func (m *JobMutation) AddedMaxDelaySeconds() (r int, exists bool) {
	v := m.addmax_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDelaySeconds resets all changes to the "max_delay_seconds" field.
func (m *JobMutation) ResetMaxDelaySeconds() {
	m.max_delay_seconds = nil
	m.addmax_delay_seconds = nil
}

// SetRetryAt sets the "retry_at" field.
func (m *JobMutation) SetRetryAt(t time.Time) {
	m.retry_at = &t
}

// RetryAt returns the value of the "retry_at" field in the mutation.
func (m *JobMutation) RetryAt() (r time.Time, exists bool) {
	v := m.retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAt returns the old "retry_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAt: %w", err)
	}
	return oldValue.RetryAt, nil
}

// ClearRetryAt clears the value of the "retry_at" field.
func (m *JobMutation) ClearRetryAt() {
	m.retry_at = nil
	m.clearedFields[job.FieldRetryAt] = struct{}{}
}

// RetryAtCleared returns if the "retry_at" field was cleared in this mutation.
func (m *JobMutation) RetryAtCleared() bool {
	_, ok := m.clearedFields[job.FieldRetryAt]
	return ok
}

// ResetRetryAt resets all changes to the "retry_at" field.
func (m *JobMutation) ResetRetryAt() {
	m.retry_at = nil
	delete(m.clearedFields, job.FieldRetryAt)
}

// SetExecutionTimeoutSeconds sets the "execution_timeout_seconds" field.
func (m *JobMutation) SetExecutionTimeoutSeconds(i int) {
	m.execution_timeout_seconds = &i
	m.addexecution_timeout_seconds = nil
}

// ExecutionTimeoutSeconds returns the value of the "execution_timeout_seconds" field in the mutation.
func (m *JobMutation) ExecutionTimeoutSeconds() (r int, exists bool) {
	v := m.execution_timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeoutSeconds returns the old "execution_timeout_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldExecutionTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeoutSeconds: %w", err)
	}
	return oldValue.ExecutionTimeoutSeconds, nil
}

// AddExecutionTimeoutSeconds adds i to the "execution_timeout_seconds" field.
func (m *JobMutation) AddExecutionTimeoutSeconds(i int) {
	if m.addexecution_timeout_seconds != nil {
		*m.addexecution_timeout_seconds += i
	} else {
		m.addexecution_timeout_seconds = &i
	}
}

// AddedExecutionTimeoutSeconds returns the value that was added to the "execution_timeout_seconds" field in this mutation.
func (m *JobMutation) AddedExecutionTimeoutSeconds() (r int, exists bool) {
	v := m.addexecution_timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeoutSeconds resets all changes to the "execution_timeout_seconds" field.
func (m *JobMutation) ResetExecutionTimeoutSeconds() {
	m.execution_timeout_seconds = nil
	m.addexecution_timeout_seconds = nil
}

// SetHeartbeatIntervalSeconds sets the "heartbeat_interval_seconds" field.
func (m *JobMutation) SetHeartbeatIntervalSeconds(i int) {
	m.heartbeat_interval_seconds = &i
	m.addheartbeat_interval_seconds = nil
}

// HeartbeatIntervalSeconds returns the value of the "heartbeat_interval_seconds" field in the mutation.
func (m *JobMutation) HeartbeatIntervalSeconds() (r int, exists bool) {
	v := m.heartbeat_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatIntervalSeconds returns the old "heartbeat_interval_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatIntervalSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatIntervalSeconds: %w", err)
	}
	return oldValue.HeartbeatIntervalSeconds, nil
}

// AddHeartbeatIntervalSeconds adds i to the "heartbeat_interval_seconds" field.
func (m *JobMutation) AddHeartbeatIntervalSeconds(i int) {
	if m.addheartbeat_interval_seconds != nil {
		*m.addheartbeat_interval_seconds += i
	} else {
		m.addheartbeat_interval_seconds = &i
	}
}

// AddedHeartbeatIntervalSeconds returns the value that was added to the "heartbeat_interval_seconds" field in this mutation.
func (m *JobMutation) AddedHeartbeatIntervalSeconds() (r int, exists bool) {
	v := m.addheartbeat_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeartbeatIntervalSeconds resets all changes to the "heartbeat_interval_seconds" field.
func (m *JobMutation) ResetHeartbeatIntervalSeconds() {
	m.heartbeat_interval_seconds = nil
	m.addheartbeat_interval_seconds = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *JobMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *JobMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *JobMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[job.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *JobMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, job.FieldLastHeartbeat)
}

// SetLogs sets the "logs" field.
func (m *JobMutation) SetLogs(jm json.RawMessage) {
	m.logs = &jm
	m.appendlogs = nil
}

// Logs returns the value of the "logs" field in the mutation.
func (m *JobMutation) Logs() (r json.RawMessage, exists bool) {
	v := m.logs
	if v == nil {
		return
	}
	return *v, true
}

// OldLogs returns the old "logs" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLogs(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogs: %w", err)
	}
	return oldValue.Logs, nil
}

// AppendLogs adds jm to the "logs" field.
func (m *JobMutation) AppendLogs(jm json.RawMessage) {
	m.appendlogs = append(m.appendlogs, jm...)
}

// AppendedLogs returns the list of values that were appended to the "logs" field in this mutation.
func (m *JobMutation) AppendedLogs() (json.RawMessage, bool) {
	if len(m.appendlogs) == 0 {
		return nil, false
	}
	return m.appendlogs, true
}

// ClearLogs clears the value of the "logs" field.
func (m *JobMutation) ClearLogs() {
	m.logs = nil
	m.appendlogs = nil
	m.clearedFields[job.FieldLogs] = struct{}{}
}

// LogsCleared returns if the "logs" field was cleared in this mutation.
func (m *JobMutation) LogsCleared() bool {
	_, ok := m.clearedFields[job.FieldLogs]
	return ok
}

// ResetLogs resets all changes to the "logs" field.
func (m *JobMutation) ResetLogs() {
	m.logs = nil
	m.appendlogs = nil
	delete(m.clearedFields, job.FieldLogs)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *JobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[job.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *JobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *JobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *JobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.document != nil {
		fields = append(fields, job.FieldDocumentID)
	}
	if m.step != nil {
		fields = append(fields, job.FieldStep)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.input != nil {
		fields = append(fields, job.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, job.FieldOutput)
	}
	if m.error_kind != nil {
		fields = append(fields, job.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.retry_enabled != nil {
		fields = append(fields, job.FieldRetryEnabled)
	}
	if m.backoff_multiplier != nil {
		fields = append(fields, job.FieldBackoffMultiplier)
	}
	if m.initial_delay_seconds != nil {
		fields = append(fields, job.FieldInitialDelaySeconds)
	}
	if m.max_delay_seconds != nil {
		fields = append(fields, job.FieldMaxDelaySeconds)
	}
	if m.retry_at != nil {
		fields = append(fields, job.FieldRetryAt)
	}
	if m.execution_timeout_seconds != nil {
		fields = append(fields, job.FieldExecutionTimeoutSeconds)
	}
	if m.heartbeat_interval_seconds != nil {
		fields = append(fields, job.FieldHeartbeatIntervalSeconds)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.logs != nil {
		fields = append(fields, job.FieldLogs)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldDocumentID:
		return m.DocumentID()
	case job.FieldStep:
		return m.Step()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldInput:
		return m.Input()
	case job.FieldOutput:
		return m.Output()
	case job.FieldErrorKind:
		return m.ErrorKind()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldRetryEnabled:
		return m.RetryEnabled()
	case job.FieldBackoffMultiplier:
		return m.BackoffMultiplier()
	case job.FieldInitialDelaySeconds:
		return m.InitialDelaySeconds()
	case job.FieldMaxDelaySeconds:
		return m.MaxDelaySeconds()
	case job.FieldRetryAt:
		return m.RetryAt()
	case job.FieldExecutionTimeoutSeconds:
		return m.ExecutionTimeoutSeconds()
	case job.FieldHeartbeatIntervalSeconds:
		return m.HeartbeatIntervalSeconds()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case job.FieldLogs:
		return m.Logs()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case job.FieldStep:
		return m.OldStep(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldInput:
		return m.OldInput(ctx)
	case job.FieldOutput:
		return m.OldOutput(ctx)
	case job.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldRetryEnabled:
		return m.OldRetryEnabled(ctx)
	case job.FieldBackoffMultiplier:
		return m.OldBackoffMultiplier(ctx)
	case job.FieldInitialDelaySeconds:
		return m.OldInitialDelaySeconds(ctx)
	case job.FieldMaxDelaySeconds:
		return m.OldMaxDelaySeconds(ctx)
	case job.FieldRetryAt:
		return m.OldRetryAt(ctx)
	case job.FieldExecutionTimeoutSeconds:
		return m.OldExecutionTimeoutSeconds(ctx)
	case job.FieldHeartbeatIntervalSeconds:
		return m.OldHeartbeatIntervalSeconds(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case job.FieldLogs:
		return m.OldLogs(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case job.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldInput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case job.FieldOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case job.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldRetryEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryEnabled(v)
		return nil
	case job.FieldBackoffMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffMultiplier(v)
		return nil
	case job.FieldInitialDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialDelaySeconds(v)
		return nil
	case job.FieldMaxDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDelaySeconds(v)
		return nil
	case job.FieldRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAt(v)
		return nil
	case job.FieldExecutionTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeoutSeconds(v)
		return nil
	case job.FieldHeartbeatIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatIntervalSeconds(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case job.FieldLogs:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogs(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.addbackoff_multiplier != nil {
		fields = append(fields, job.FieldBackoffMultiplier)
	}
	if m.addinitial_delay_seconds != nil {
		fields = append(fields, job.FieldInitialDelaySeconds)
	}
	if m.addmax_delay_seconds != nil {
		fields = append(fields, job.FieldMaxDelaySeconds)
	}
	if m.addexecution_timeout_seconds != nil {
		fields = append(fields, job.FieldExecutionTimeoutSeconds)
	}
	if m.addheartbeat_interval_seconds != nil {
		fields = append(fields, job.FieldHeartbeatIntervalSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case job.FieldBackoffMultiplier:
		return m.AddedBackoffMultiplier()
	case job.FieldInitialDelaySeconds:
		return m.AddedInitialDelaySeconds()
	case job.FieldMaxDelaySeconds:
		return m.AddedMaxDelaySeconds()
	case job.FieldExecutionTimeoutSeconds:
		return m.AddedExecutionTimeoutSeconds()
	case job.FieldHeartbeatIntervalSeconds:
		return m.AddedHeartbeatIntervalSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case job.FieldBackoffMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffMultiplier(v)
		return nil
	case job.FieldInitialDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInitialDelaySeconds(v)
		return nil
	case job.FieldMaxDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDelaySeconds(v)
		return nil
	case job.FieldExecutionTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeoutSeconds(v)
		return nil
	case job.FieldHeartbeatIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeartbeatIntervalSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldInput) {
		fields = append(fields, job.FieldInput)
	}
	if m.FieldCleared(job.FieldOutput) {
		fields = append(fields, job.FieldOutput)
	}
	if m.FieldCleared(job.FieldErrorKind) {
		fields = append(fields, job.FieldErrorKind)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldRetryAt) {
		fields = append(fields, job.FieldRetryAt)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeat) {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.FieldCleared(job.FieldLogs) {
		fields = append(fields, job.FieldLogs)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldInput:
		m.ClearInput()
		return nil
	case job.FieldOutput:
		m.ClearOutput()
		return nil
	case job.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldRetryAt:
		m.ClearRetryAt()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case job.FieldLogs:
		m.ClearLogs()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case job.FieldStep:
		m.ResetStep()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldInput:
		m.ResetInput()
		return nil
	case job.FieldOutput:
		m.ResetOutput()
		return nil
	case job.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldRetryEnabled:
		m.ResetRetryEnabled()
		return nil
	case job.FieldBackoffMultiplier:
		m.ResetBackoffMultiplier()
		return nil
	case job.FieldInitialDelaySeconds:
		m.ResetInitialDelaySeconds()
		return nil
	case job.FieldMaxDelaySeconds:
		m.ResetMaxDelaySeconds()
		return nil
	case job.FieldRetryAt:
		m.ResetRetryAt()
		return nil
	case job.FieldExecutionTimeoutSeconds:
		m.ResetExecutionTimeoutSeconds()
		return nil
	case job.FieldHeartbeatIntervalSeconds:
		m.ResetHeartbeatIntervalSeconds()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case job.FieldLogs:
		m.ResetLogs()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, job.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, job.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}
