package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trivia-api/internal/platform/logger"
)

// AuditLogHandler writes one info record per question event.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. A nil logger uses slog.Default.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l.With("component", "audit_log")}
}

var _ EventHandler = (*AuditLogHandler)(nil)

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *Event) error {
	log := logger.FromContextOrDefault(ctx, h.logger)

	var payload QuestionPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", event.Type, err)
	}

	log.Info("question audit",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int64("question_id", payload.QuestionID),
		slog.Int64("category_id", payload.CategoryID),
		slog.Time("occurred_at", event.CreatedAt))
	return nil
}
