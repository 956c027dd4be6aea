package editCrack

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"crackKeeper/internal/kafka/producer"
	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/models"
	"crackKeeper/internal/records"
	"crackKeeper/internal/validation"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RecordUpdater
type RecordUpdater interface {
	UpdateRecord(ctx context.Context, id uuid.UUID, data models.CrackEditData) error
}

// EditCrack updates the editable fields of an existing record. The image and
// its derived name are immutable after submission.
// @Summary      Edits a crack record
// @Tags         cracks
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cracks/{id} [put]
func New(log *slog.Logger, recordUpdater RecordUpdater, collection *records.Collection, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.crack.editCrack.New"

		log = log.With(
			slog.String("op", op),
		)

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid record ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid record ID"))
			return
		}

		var data models.CrackEditData
		if err = render.DecodeJSON(r.Body, &data); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// Validation gates the remote write: an invalid edit never reaches
		// the record store.
		errs := validation.ValidateEdit(data)
		if validation.HasErrors(errs) {
			log.Info("edit rejected by validation")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors(errs))
			return
		}

		if err = recordUpdater.UpdateRecord(r.Context(), id, data); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("record not found", slog.String("record_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("record not found"))
				return
			}

			log.Error("failed to update record", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update record"))
			return
		}

		collection.ApplyUpdate(id, data)

		log.Info("crack record updated", slog.String("record_id", id.String()))

		publishEvent(r, log, kafkaProducer, models.RecordEvent{
			Event:      models.EventRecordUpdated,
			RecordID:   id,
			OccurredAt: time.Now().UTC(),
		})

		render.JSON(w, r, response.OK())
	}
}

func publishEvent(r *http.Request, log *slog.Logger, kafkaProducer producer.ProducerIface, event models.RecordEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Warn("failed to marshal record event", sl.Err(err))
		return
	}

	if err = kafkaProducer.SendMessage(r.Context(), message); err != nil {
		log.Warn("failed to publish record event", sl.Err(err))
	}
}
