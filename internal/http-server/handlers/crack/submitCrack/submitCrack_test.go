package submitCrack_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crackKeeper/internal/http-server/handlers/crack/submitCrack"
	kafkaMocks "crackKeeper/internal/kafka/producer/mocks"
	"crackKeeper/internal/lib/api/response"
	"crackKeeper/internal/models"
	workflowMocks "crackKeeper/internal/workflow/mocks"
)

func TestSubmitCrack(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	validFields := map[string]string{
		"label":          "Hallway crack",
		"description":    "Diagonal crack above the door frame",
		"classification": "Fair",
		"location":       "Basak",
		"datetime":       "2026-08-29T10:30",
		"imageName":      "crack_front",
	}

	savedRecord := &models.CrackRecord{
		ID:             testUUID,
		Label:          "Hallway crack",
		Classification: models.ClassificationFair,
		ImageName:      "crack_front.jpg",
		ImagePath:      "Images/crack_front.jpg",
		CreatedAt:      time.Now().UTC(),
	}

	tests := []struct {
		name           string
		fields         map[string]string
		withFile       bool
		fileContent    []byte
		uploadErr      error
		saveErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			fields:         validFields,
			withFile:       true,
			fileContent:    []byte("jpeg bytes"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty Form Without Image",
			fields:         map[string]string{},
			withFile:       false,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid form data",
		},
		{
			name:           "Empty File",
			fields:         validFields,
			withFile:       true,
			fileContent:    []byte(""),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "received empty file",
		},
		{
			name:           "Upload Failure",
			fields:         validFields,
			withFile:       true,
			fileContent:    []byte("jpeg bytes"),
			uploadErr:      errors.New("storage unreachable"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to upload image",
		},
		{
			name:           "Save Failure Leaves Orphan",
			fields:         validFields,
			withFile:       true,
			fileContent:    []byte("jpeg bytes"),
			saveErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to save crack record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploaderMock := workflowMocks.NewBlobUploader(t)
			creatorMock := workflowMocks.NewRecordCreator(t)
			extractorMock := workflowMocks.NewExifExtractor(t)
			kafkaProducerMock := kafkaMocks.NewProducerIface(t)

			spooled := tt.withFile && len(tt.fileContent) > 0
			if spooled {
				extractorMock.On("Extract", mock.Anything).Return(models.ExifData{}).Once()
			}
			if spooled {
				uploaderMock.On("Upload", mock.Anything, "crack_front.jpg", mock.Anything, mock.Anything, mock.Anything).
					Return(&models.UploadedImage{
						URL:  "http://localhost:9000/crack-images/Images/crack_front.jpg",
						Path: "Images/crack_front.jpg",
					}, tt.uploadErr).Once()
			}
			if spooled && tt.uploadErr == nil {
				creatorMock.On("SaveRecord", mock.Anything, mock.Anything, "crack_front.jpg", mock.Anything, "Images/crack_front.jpg").
					Return(savedRecord, tt.saveErr).Once()
			}
			if tt.name == "Success" {
				kafkaProducerMock.On("SendMessage", mock.Anything, mock.Anything).Return(nil).Once()
			}

			body := new(bytes.Buffer)
			writer := multipart.NewWriter(body)
			for key, value := range tt.fields {
				require.NoError(t, writer.WriteField(key, value))
			}
			if tt.withFile {
				part, err := writer.CreateFormFile("image", "crack_front.jpg")
				require.NoError(t, err)
				_, err = part.Write(tt.fileContent)
				require.NoError(t, err)
			}
			require.NoError(t, writer.Close())

			req := httptest.NewRequest(http.MethodPost, "/cracks", body)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			rr := httptest.NewRecorder()

			handler := submitCrack.New(log, uploaderMock, creatorMock, extractorMock, kafkaProducerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var resp submitCrack.CrackResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedError != "" {
				require.Equal(t, response.StatusError, resp.Status)
				require.Equal(t, tt.expectedError, resp.Error)
				return
			}

			require.Equal(t, response.StatusOK, resp.Status)
			require.NotNil(t, resp.Record)
			require.Equal(t, testUUID, resp.Record.ID)
		})
	}
}

func TestSubmitCrackValidationFields(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	uploaderMock := workflowMocks.NewBlobUploader(t)
	creatorMock := workflowMocks.NewRecordCreator(t)
	extractorMock := workflowMocks.NewExifExtractor(t)
	kafkaProducerMock := kafkaMocks.NewProducerIface(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/cracks", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rr := httptest.NewRecorder()

	handler := submitCrack.New(log, uploaderMock, creatorMock, extractorMock, kafkaProducerMock)
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.Equal(t, response.StatusError, resp.Status)
	require.Len(t, resp.Fields, 7)
	for _, field := range []string{"image", "label", "description", "classification", "location", "datetime", "imageName"} {
		require.Contains(t, resp.Fields, field)
	}
}
