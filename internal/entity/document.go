package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
)

// Document represents one unit of user-visible work for data transfer
// between layers: an uploaded file and its accessibility artifacts.
type Document struct {
	ID           uuid.UUID                `json:"id"`
	OwnerID      string                   `json:"owner_id"`
	Status       constants.DocumentStatus `json:"status"`
	Filename     string                   `json:"filename"`
	SourceURL    string                   `json:"source_url,omitempty"`
	SourcePath   string                   `json:"source_path,omitempty"`
	ContentType  string                   `json:"content_type,omitempty"`
	Metadata     map[string]any           `json:"metadata,omitempty"`
	Artifacts    map[string]string        `json:"artifacts,omitempty"`
	Scores       map[string]float64       `json:"scores,omitempty"`
	Issues       []Issue                  `json:"issues,omitempty"`
	StepPlan     []constants.Step         `json:"step_plan"`
	Cancelled    bool                     `json:"cancelled"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
}

// Issue is one validation finding recorded against a document.
type Issue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// RemainingSteps returns the plan steps after the given step, in plan order.
func (d *Document) RemainingSteps(after constants.Step) []constants.Step {
	for i, s := range d.StepPlan {
		if s == after {
			return d.StepPlan[i+1:]
		}
	}
	return nil
}

// FirstStep returns the first planned step, or "" for an empty plan.
func (d *Document) FirstStep() constants.Step {
	if len(d.StepPlan) == 0 {
		return ""
	}
	return d.StepPlan[0]
}
