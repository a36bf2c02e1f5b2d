package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("step").NotEmpty().
			Validate(utils.EnumValidator(constants.Steps...)),
		field.String("status").Default(string(constants.JobPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("priority").Default(constants.PriorityDefault),
		field.Int("attempts").Default(0).NonNegative(),
		field.Int("max_attempts").Default(3).Positive(),
		field.JSON("input", json.RawMessage{}).Optional(),
		field.JSON("output", json.RawMessage{}).Optional(),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// retry policy, frozen at job creation
		field.Bool("retry_enabled").Default(true),
		field.Float("backoff_multiplier").Default(2.0),
		field.Int("initial_delay_seconds").Default(5),
		field.Int("max_delay_seconds").Default(300),
		field.Time("retry_at").Optional().Nillable(),
		// timeout policy, frozen at job creation
		field.Int("execution_timeout_seconds").Default(600),
		field.Int("heartbeat_interval_seconds").Default(15),
		// worker claim
		field.String("worker_id").Optional().Nillable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("last_heartbeat").Optional().Nillable(),
		// append-only timestamped entries, one per attempt event
		field.JSON("logs", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE document
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// in-flight uniqueness check for (document, step)
		index.Fields("document_id", "step", "status"),
		// dispatch selection
		index.Fields("status", "priority", "created_at"),
		// retry sweep
		index.Fields("status", "retry_at"),
		// heartbeat/timeout sweep
		index.Fields("status", "last_heartbeat"),
	}
}
