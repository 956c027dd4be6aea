package listCracks

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/models"
	"crackKeeper/internal/records"
)

type ListResponse struct {
	response.Response
	Records []models.CrackRecord `json:"records"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	HasMore bool                 `json:"hasMore"`
}

// ListCracks returns the visible window of the record collection, newest
// first. The first request (or ?refresh=true) fetches from the store and
// rewinds paging to the first page.
// @Summary      Lists crack records
// @Tags         cracks
// @Produce      json
// @Param        refresh  query  bool  false  "Re-fetch from the store"
// @Success      200  {object}  listCracks.ListResponse
// @Failure      500  {object}  response.Response
// @Router       /cracks [get]
func New(log *slog.Logger, collection *records.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.crack.listCracks.New"

		log = log.With(
			slog.String("op", op),
		)

		refresh := r.URL.Query().Get("refresh") == "true"
		if refresh || !collection.Loaded() {
			if err := collection.Refresh(r.Context()); err != nil {
				log.Error("failed to load records", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to load records"))
				return
			}
		}

		render.JSON(w, r, payload(collection))
	}
}

// More reveals the next page from the already-fetched snapshot. It never goes
// back to the store; stale entries persist until the next refresh.
// @Summary      Reveals the next page of crack records
// @Tags         cracks
// @Produce      json
// @Success      200  {object}  listCracks.ListResponse
// @Router       /cracks/more [post]
func More(log *slog.Logger, collection *records.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.crack.listCracks.More"

		log = log.With(
			slog.String("op", op),
		)

		collection.LoadMore()

		log.Info("page advanced", slog.Int("page", collection.Page()))

		render.JSON(w, r, payload(collection))
	}
}

func payload(collection *records.Collection) ListResponse {
	return ListResponse{
		Response: response.OK(),
		Records:  collection.Visible(),
		Total:    collection.Total(),
		Page:     collection.Page(),
		HasMore:  collection.HasMore(),
	}
}
