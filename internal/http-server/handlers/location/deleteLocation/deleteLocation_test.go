package deleteLocation_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crackKeeper/internal/http-server/handlers/location/deleteLocation"
	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/locations"
	storeMocks "crackKeeper/internal/locations/mocks"
)

func TestDeleteLocation(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	tests := []struct {
		name           string
		id             string
		deleteErr      error
		expectDelete   bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			id:             testUUID.String(),
			expectDelete:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			id:             "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid location ID",
		},
		{
			name:           "Not Found",
			id:             testUUID.String(),
			deleteErr:      fmt.Errorf("storage.postgres.DeleteLocation: %w", sql.ErrNoRows),
			expectDelete:   true,
			expectedStatus: http.StatusNotFound,
			expectedError:  "location not found",
		},
		{
			name:           "Store Failure",
			id:             testUUID.String(),
			deleteErr:      errors.New("db error"),
			expectDelete:   true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to remove location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeMock := storeMocks.NewCustomLocationStore(t)

			if tt.expectDelete {
				storeMock.On("DeleteLocation", mock.Anything, testUUID).Return(tt.deleteErr).Once()
			}

			list := locations.NewList(storeMock)

			router := chi.NewRouter()
			router.Delete("/locations/{id}", deleteLocation.New(log, list))

			req := httptest.NewRequest(http.MethodDelete, "/locations/"+tt.id, nil)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedError != "" {
				require.Equal(t, response.StatusError, resp.Status)
				require.Equal(t, tt.expectedError, resp.Error)
				return
			}

			require.Equal(t, response.StatusOK, resp.Status)
		})
	}
}
