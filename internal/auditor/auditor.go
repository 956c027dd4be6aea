package auditor

import (
	"context"
	"encoding/json"
	"log/slog"

	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuditStore
type AuditStore interface {
	SaveAuditEntry(ctx context.Context, event models.RecordEvent) error
}

// Auditor consumes record lifecycle events and persists them as an audit
// trail. It runs off the kafka consumer loop, decoupled from the request path.
type Auditor struct {
	storage AuditStore
	log     *slog.Logger
}

func NewAuditor(log *slog.Logger, storage AuditStore) *Auditor {
	return &Auditor{
		log:     log,
		storage: storage,
	}
}

func (a *Auditor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "auditor.ProcessMessage"

	var event models.RecordEvent

	if err := json.Unmarshal(message, &event); err != nil {
		a.log.Error("failed to unmarshal record event", slog.String("op", op), sl.Err(err))
		return err
	}

	a.log.Info("auditing record event",
		slog.String("op", op),
		slog.String("event", event.Event),
		slog.String("record_id", event.RecordID.String()),
	)

	if err := a.storage.SaveAuditEntry(ctx, event); err != nil {
		a.log.Error("failed to save audit entry", slog.String("op", op), sl.Err(err))
		return err
	}

	return nil
}
