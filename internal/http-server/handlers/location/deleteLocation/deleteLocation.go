package deleteLocation

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/locations"
)

// DeleteLocation removes a custom location by id. Built-in locations have no
// id and cannot be removed.
// @Summary      Removes a custom location
// @Tags         locations
// @Produce      json
// @Param        id  path  string  true  "Location ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /locations/{id} [delete]
func New(log *slog.Logger, list *locations.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.deleteLocation.New"

		log = log.With(
			slog.String("op", op),
		)

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid location ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid location ID"))
			return
		}

		if err = list.Remove(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Info("location not found", slog.String("location_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("location not found"))
				return
			}

			log.Error("failed to remove location", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove location"))
			return
		}

		log.Info("custom location removed", slog.String("location_id", id.String()))

		render.JSON(w, r, response.OK())
	}
}
