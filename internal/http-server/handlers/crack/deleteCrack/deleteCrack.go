package deleteCrack

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
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RecordRemover
type RecordRemover interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*models.CrackRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BlobRemover
type BlobRemover interface {
	Remove(ctx context.Context, path string) error
}

// DeleteCrack removes the stored photo first and the record second, the
// reverse of submission order. If the blob delete fails the record stays
// intact and keeps its reference.
// @Summary      Deletes a crack record
// @Tags         cracks
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cracks/{id} [delete]
func New(log *slog.Logger, recordRemover RecordRemover, blobRemover BlobRemover, collection *records.Collection, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.crack.deleteCrack.New"

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

		record, err := recordRemover.GetRecord(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("record not found", slog.String("record_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("record not found"))
				return
			}

			log.Error("failed to load record", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete crack record"))
			return
		}

		if err = blobRemover.Remove(r.Context(), record.ImagePath); err != nil {
			log.Error("failed to delete image", slog.String("image_path", record.ImagePath), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete image"))
			return
		}

		if err = recordRemover.DeleteRecord(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("record already gone", slog.String("record_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("record not found"))
				return
			}

			log.Error("failed to delete record", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete crack record"))
			return
		}

		collection.ApplyDelete(id)

		log.Info("crack record deleted", slog.String("record_id", id.String()))

		publishEvent(r, log, kafkaProducer, models.RecordEvent{
			Event:      models.EventRecordDeleted,
			RecordID:   id,
			ImagePath:  record.ImagePath,
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
