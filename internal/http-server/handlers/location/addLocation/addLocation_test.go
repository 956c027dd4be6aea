package addLocation_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crackKeeper/internal/http-server/handlers/location/addLocation"
	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/locations"
	storeMocks "crackKeeper/internal/locations/mocks"
	"crackKeeper/internal/models"
)

func TestAddLocation(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	saved := &models.CustomLocation{
		ID:        uuid.New(),
		Name:      "Sitio Mahayahay",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name           string
		body           string
		savedLocation  *models.CustomLocation
		saveErr        error
		expectSave     bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			body:           `{"name":"Sitio Mahayahay"}`,
			savedLocation:  saved,
			expectSave:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Trims Whitespace",
			body:           `{"name":"  Sitio Mahayahay  "}`,
			savedLocation:  saved,
			expectSave:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty Name",
			body:           `{"name":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "location name cannot be empty",
		},
		{
			name:           "Duplicate Of Builtin",
			body:           `{"name":"basak"}`,
			expectedStatus: http.StatusConflict,
			expectedError:  "location already exists",
		},
		{
			name:           "Store Failure",
			body:           `{"name":"Sitio Mahayahay"}`,
			saveErr:        errors.New("db error"),
			expectSave:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to add location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeMock := storeMocks.NewCustomLocationStore(t)

			if tt.expectSave {
				storeMock.On("SaveLocation", mock.Anything, "Sitio Mahayahay").
					Return(tt.savedLocation, tt.saveErr).Once()
			}

			list := locations.NewList(storeMock)

			req := httptest.NewRequest(http.MethodPost, "/locations", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()

			handler := addLocation.New(log, list)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp addLocation.LocationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedError != "" {
				require.Equal(t, response.StatusError, resp.Status)
				require.Equal(t, tt.expectedError, resp.Error)
				return
			}

			require.Equal(t, response.StatusOK, resp.Status)
			require.NotNil(t, resp.Location)
			require.Equal(t, "Sitio Mahayahay", resp.Location.Name)
		})
	}
}
