package submitCrack

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"crackKeeper/internal/kafka/producer"
	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/models"
	"crackKeeper/internal/workflow"
)

type CrackResponse struct {
	response.Response
	Record *models.CrackRecord `json:"record,omitempty"`
}

// SubmitCrack submits a new crack record.
// @Summary      Submits a crack record
// @Description  Uploads the crack photo and creates the referencing record
// @Tags         cracks
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Crack photo"
// @Success      200  {object}  submitCrack.CrackResponse
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cracks [post]
func New(log *slog.Logger, blobUploader workflow.BlobUploader, recordCreator workflow.RecordCreator, extractor workflow.ExifExtractor, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.crack.submitCrack.New"

		log = log.With(
			slog.String("op", op),
		)

		sub := workflow.NewSubmission(log, blobUploader, recordCreator, extractor)
		defer sub.Teardown()

		// Field values go in before the file so a user-typed image name is
		// never overwritten by the derived default.
		sub.SetLabel(r.FormValue("label"))
		sub.SetDescription(r.FormValue("description"))
		sub.SetClassification(models.Classification(r.FormValue("classification")))
		sub.SetLocation(r.FormValue("location"))
		sub.SetDatetime(r.FormValue("datetime"))
		sub.SetLength(r.FormValue("length"))
		sub.SetWidth(r.FormValue("width"))
		sub.SetDepth(r.FormValue("depth"))
		sub.SetImageName(r.FormValue("imageName"))

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer func() { _ = file.Close() }()

			if header.Size == 0 {
				log.Error("received empty file")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("received empty file"))
				return
			}

			image, spoolErr := workflow.SpoolImage(header.Filename, header.Header.Get("Content-Type"), file)
			if spoolErr != nil {
				log.Error("failed to buffer uploaded file", sl.Err(spoolErr))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to read image"))
				return
			}

			sub.SelectImage(image)
		case errors.Is(err, http.ErrMissingFile):
			// Let validation report the missing image next to the field.
		default:
			log.Error("failed to get file from request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to get file from request"))
			return
		}

		sub.AwaitExtraction()

		record, err := sub.Submit(r.Context())
		switch {
		case errors.Is(err, workflow.ErrValidationFailed):
			log.Info("submission rejected by validation")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors(sub.Errors()))
			return
		case errors.Is(err, workflow.ErrUploadFailed):
			log.Error("failed to upload image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to upload image"))
			return
		case err != nil:
			log.Error("failed to save crack record", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save crack record"))
			return
		}

		log.Info("crack record saved", slog.String("record_id", record.ID.String()))

		publishEvent(r, log, kafkaProducer, models.RecordEvent{
			Event:      models.EventRecordCreated,
			RecordID:   record.ID,
			ImagePath:  record.ImagePath,
			OccurredAt: time.Now().UTC(),
		})

		render.JSON(w, r, CrackResponse{
			Response: response.OK(),
			Record:   record,
		})
	}
}

// publishEvent is best-effort: the record is already persisted, a lost audit
// event must not fail the request.
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
