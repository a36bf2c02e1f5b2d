package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/notify"
)

// NotifierStep delivers the completion notification as the last planned
// stage. Delivery failure is a step failure, so it retries with backoff
// and, when exhausted, surfaces as NOTIFICATION_FAILED on the document.
type NotifierStep struct {
	notifier notify.Notifier
	endpoint string
	logger   *slog.Logger
}

func NewNotifierStep(notifier notify.Notifier, endpoint string, logger *slog.Logger) *NotifierStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifierStep{notifier: notifier, endpoint: endpoint, logger: logger}
}

func (n *NotifierStep) Step() constants.Step { return constants.StepNotifier }

func (n *NotifierStep) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	err := n.notifier.Notify(ctx, notify.Payload{
		DocID:            in.DocumentID,
		Status:           constants.DocumentCompleted,
		ArtifactsSummary: in.Artifacts,
	})
	if err != nil {
		return nil, fmt.Errorf("notifier: %w", err)
	}
	n.logger.Info("completion notified", "doc_id", in.DocumentID)
	return marshalOutput(entity.NotifierOutput{
		Delivered: true,
		Endpoint:  n.endpoint,
	})
}
