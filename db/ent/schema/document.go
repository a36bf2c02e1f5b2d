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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty(),
		field.String("status").Default(string(constants.DocumentPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("filename").NotEmpty(),
		field.String("source_url").Optional().Nillable(),
		field.String("source_path").Optional().Nillable(),
		field.String("content_type").Optional().Nillable(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		// output-type -> storage location, merged step by step by the router
		field.JSON("artifacts", json.RawMessage{}).Optional(),
		field.JSON("scores", json.RawMessage{}).Optional(),
		field.JSON("issues", json.RawMessage{}).Optional(),
		// ordered list of required steps, fixed at intake and never reordered
		field.JSON("step_plan", json.RawMessage{}).Optional(),
		field.Bool("cancelled").Default(false),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY jobs
		edge.To("jobs", Job.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status", "created_at"),
		index.Fields("status", "updated_at"),
	}
}
