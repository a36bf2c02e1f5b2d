// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/accessly/docpipeline/db/ent/schema"
	"github.com/accessly/docpipeline/gen/ent/document"
	"github.com/accessly/docpipeline/gen/ent/job"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescOwnerID is the schema descriptor for owner_id field.
	documentDescOwnerID := documentFields[1].Descriptor()
	// document.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	document.OwnerIDValidator = documentDescOwnerID.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[2].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescCancelled is the schema descriptor for cancelled field.
	documentDescCancelled := documentFields[12].Descriptor()
	// document.DefaultCancelled holds the default value on creation for the cancelled field.
	document.DefaultCancelled = documentDescCancelled.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[14].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[15].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescStep is the schema descriptor for step field.
	jobDescStep := jobFields[2].Descriptor()
	// job.StepValidator is a validator for the "step" field. It is called by the builders before save.
	job.StepValidator = func() func(string) error {
		validators := jobDescStep.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(step string) error {
			for _, fn := range fns {
				if err := fn(step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[4].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// job.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	job.AttemptsValidator = jobDescAttempts.Validators[0].(func(int) error)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[6].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// job.MaxAttemptsValidator is a validator for the "max_attempts" field. It is called by the builders before save.
	job.MaxAttemptsValidator = jobDescMaxAttempts.Validators[0].(func(int) error)
	// jobDescRetryEnabled is the schema descriptor for retry_enabled field.
	jobDescRetryEnabled := jobFields[11].Descriptor()
	// job.DefaultRetryEnabled holds the default value on creation for the retry_enabled field.
	job.DefaultRetryEnabled = jobDescRetryEnabled.Default.(bool)
	// jobDescBackoffMultiplier is the schema descriptor for backoff_multiplier field.
	jobDescBackoffMultiplier := jobFields[12].Descriptor()
	// job.DefaultBackoffMultiplier holds the default value on creation for the backoff_multiplier field.
	job.DefaultBackoffMultiplier = jobDescBackoffMultiplier.Default.(float64)
	// jobDescInitialDelaySeconds is the schema descriptor for initial_delay_seconds field.
	jobDescInitialDelaySeconds := jobFields[13].Descriptor()
	// job.DefaultInitialDelaySeconds holds the default value on creation for the initial_delay_seconds field.
	job.DefaultInitialDelaySeconds = jobDescInitialDelaySeconds.Default.(int)
	// jobDescMaxDelaySeconds is the schema descriptor for max_delay_seconds field.
	jobDescMaxDelaySeconds := jobFields[14].Descriptor()
	// job.DefaultMaxDelaySeconds holds the default value on creation for the max_delay_seconds field.
	job.DefaultMaxDelaySeconds = jobDescMaxDelaySeconds.Default.(int)
	// jobDescExecutionTimeoutSeconds is the schema descriptor for execution_timeout_seconds field.
	jobDescExecutionTimeoutSeconds := jobFields[16].Descriptor()
	// job.DefaultExecutionTimeoutSeconds holds the default value on creation for the execution_timeout_seconds field.
	job.DefaultExecutionTimeoutSeconds = jobDescExecutionTimeoutSeconds.Default.(int)
	// jobDescHeartbeatIntervalSeconds is the schema descriptor for heartbeat_interval_seconds field.
	jobDescHeartbeatIntervalSeconds := jobFields[17].Descriptor()
	// job.DefaultHeartbeatIntervalSeconds holds the default value on creation for the heartbeat_interval_seconds field.
	job.DefaultHeartbeatIntervalSeconds = jobDescHeartbeatIntervalSeconds.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[22].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[23].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
