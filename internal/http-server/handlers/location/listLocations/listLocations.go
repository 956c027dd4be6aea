package listLocations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/locations"
	"crackKeeper/internal/models"
)

type ListResponse struct {
	response.Response
	Locations []string                `json:"locations"`
	Custom    []models.CustomLocation `json:"custom"`
}

// ListLocations returns the merged selectable location names plus the
// user-added entries with their ids.
// @Summary      Lists selectable locations
// @Tags         locations
// @Produce      json
// @Success      200  {object}  listLocations.ListResponse
// @Router       /locations [get]
func New(log *slog.Logger, list *locations.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.listLocations.New"

		log.Debug("listing locations", slog.String("op", op))

		render.JSON(w, r, ListResponse{
			Response:  response.OK(),
			Locations: list.All(),
			Custom:    list.Custom(),
		})
	}
}
