package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"crackKeeper/internal/models"
	"crackKeeper/internal/validation"
)

func validFormData() models.CrackFormData {
	return models.CrackFormData{
		Label:          "Hairline crack near stairwell",
		Description:    "A crack on the load-bearing wall",
		Classification: models.ClassificationPoor,
		Location:       "Basak",
		Datetime:       "2026-01-31T08:00",
		ImageName:      "crack_photo",
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.CrackFormData)
		hasImage bool
		wantKey  string
		wantMsg  string
	}{
		{
			name:     "Missing Image",
			mutate:   func(d *models.CrackFormData) {},
			hasImage: false,
			wantKey:  "image",
			wantMsg:  "Please upload an image",
		},
		{
			name:     "Empty Label",
			mutate:   func(d *models.CrackFormData) { d.Label = "" },
			hasImage: true,
			wantKey:  "label",
			wantMsg:  "Label is required",
		},
		{
			name:     "Whitespace Only Label",
			mutate:   func(d *models.CrackFormData) { d.Label = "   " },
			hasImage: true,
			wantKey:  "label",
			wantMsg:  "Label is required",
		},
		{
			name:     "Label Too Long",
			mutate:   func(d *models.CrackFormData) { d.Label = strings.Repeat("a", 101) },
			hasImage: true,
			wantKey:  "label",
			wantMsg:  "Label must be 100 characters or fewer",
		},
		{
			name:     "Empty Classification",
			mutate:   func(d *models.CrackFormData) { d.Classification = "" },
			hasImage: true,
			wantKey:  "classification",
			wantMsg:  "Please select a classification",
		},
		{
			name:     "Unknown Classification",
			mutate:   func(d *models.CrackFormData) { d.Classification = "Catastrophic" },
			hasImage: true,
			wantKey:  "classification",
			wantMsg:  "Please select a classification",
		},
		{
			name:     "Empty Description",
			mutate:   func(d *models.CrackFormData) { d.Description = "" },
			hasImage: true,
			wantKey:  "description",
			wantMsg:  "Description is required",
		},
		{
			name:     "Empty Location",
			mutate:   func(d *models.CrackFormData) { d.Location = "" },
			hasImage: true,
			wantKey:  "location",
			wantMsg:  "Please select a location",
		},
		{
			name:     "Empty Datetime",
			mutate:   func(d *models.CrackFormData) { d.Datetime = "" },
			hasImage: true,
			wantKey:  "datetime",
			wantMsg:  "Date and time is required",
		},
		{
			name:     "Empty Image Name",
			mutate:   func(d *models.CrackFormData) { d.ImageName = "" },
			hasImage: true,
			wantKey:  "imageName",
			wantMsg:  "Image name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validFormData()
			tt.mutate(&data)

			errs := validation.ValidateSubmission(data, tt.hasImage)

			require.Len(t, errs, 1)
			require.Equal(t, tt.wantMsg, errs[tt.wantKey])
		})
	}
}

func TestValidateSubmissionValid(t *testing.T) {
	errs := validation.ValidateSubmission(validFormData(), true)
	require.Empty(t, errs)
}

func TestValidateSubmissionLabelBoundary(t *testing.T) {
	data := validFormData()
	data.Label = strings.Repeat("a", 100)

	errs := validation.ValidateSubmission(data, true)
	require.NotContains(t, errs, "label")
}

func TestValidateSubmissionAllEmpty(t *testing.T) {
	errs := validation.ValidateSubmission(models.CrackFormData{}, false)

	require.Len(t, errs, 7)
	for _, key := range []string{"image", "label", "description", "classification", "location", "datetime", "imageName"} {
		require.Contains(t, errs, key)
	}
}

func TestValidateEdit(t *testing.T) {
	valid := models.CrackEditData{
		Label:          "Hairline crack near stairwell",
		Classification: models.ClassificationFair,
		Location:       "Basak",
		Datetime:       "2026-01-31T08:00",
	}

	require.Empty(t, validation.ValidateEdit(valid))

	// Description stays optional when editing.
	valid.Description = ""
	require.Empty(t, validation.ValidateEdit(valid))

	invalid := valid
	invalid.Classification = ""

	errs := validation.ValidateEdit(invalid)
	require.Equal(t, "Please select a classification", errs["classification"])
}

func TestHasErrors(t *testing.T) {
	require.False(t, validation.HasErrors(map[string]string{}))
	require.False(t, validation.HasErrors(nil))
	require.True(t, validation.HasErrors(map[string]string{"label": "Label is required"}))
	require.True(t, validation.HasErrors(map[string]string{"label": "err", "datetime": "err"}))
}
