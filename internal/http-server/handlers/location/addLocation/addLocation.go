package addLocation

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/locations"
	"crackKeeper/internal/models"
)

type Request struct {
	Name string `json:"name"`
}

type LocationResponse struct {
	response.Response
	Location *models.CustomLocation `json:"location,omitempty"`
}

// AddLocation creates a custom location. Duplicates of any existing name,
// built-in or custom, are rejected case-insensitively.
// @Summary      Adds a custom location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Success      200  {object}  addLocation.LocationResponse
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /locations [post]
func New(log *slog.Logger, list *locations.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.addLocation.New"

		log = log.With(
			slog.String("op", op),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		location, err := list.Add(r.Context(), req.Name)
		switch {
		case errors.Is(err, locations.ErrEmptyName):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("location name cannot be empty"))
			return
		case errors.Is(err, locations.ErrExists):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("location already exists"))
			return
		case err != nil:
			log.Error("failed to add location", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add location"))
			return
		}

		log.Info("custom location added", slog.String("name", location.Name))

		render.JSON(w, r, LocationResponse{
			Response: response.OK(),
			Location: location,
		})
	}
}
