package models

import (
	"time"

	"github.com/google/uuid"
)

// Classification is the ordinal condition rating of a crack.
type Classification string

const (
	ClassificationGood Classification = "Good"
	ClassificationFair Classification = "Fair"
	ClassificationPoor Classification = "Poor"
	ClassificationBad  Classification = "Bad"
)

func (c Classification) IsValid() bool {
	switch c {
	case ClassificationGood, ClassificationFair, ClassificationPoor, ClassificationBad:
		return true
	}
	return false
}

// CrackRecord is a persisted crack observation. UpdatedAt stays nil until the
// record is edited for the first time.
type CrackRecord struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Label          string         `db:"label" json:"label"`
	Description    string         `db:"description" json:"description"`
	Classification Classification `db:"classification" json:"classification"`
	Location       string         `db:"location" json:"location"`
	Datetime       string         `db:"datetime" json:"datetime"`
	Length         string         `db:"length" json:"length"`
	Width          string         `db:"width" json:"width"`
	Depth          string         `db:"depth" json:"depth"`
	ImageName      string         `db:"image_name" json:"imageName"`
	ImageURL       string         `db:"image_url" json:"imageUrl"`
	ImagePath      string         `db:"image_path" json:"imagePath"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      *time.Time     `db:"updated_at" json:"updatedAt,omitempty"`
}

// CrackFormData is the transient submission-form state. Classification may be
// empty while the form is being filled in.
type CrackFormData struct {
	Label          string         `json:"label" validate:"notblank,trimmed_max=100"`
	Description    string         `json:"description" validate:"notblank"`
	Classification Classification `json:"classification" validate:"required,oneof=Good Fair Poor Bad"`
	Location       string         `json:"location" validate:"required"`
	Datetime       string         `json:"datetime" validate:"required"`
	Length         string         `json:"length"`
	Width          string         `json:"width"`
	Depth          string         `json:"depth"`
	ImageName      string         `json:"imageName" validate:"notblank"`
}

// CrackEditData is the mutable subset of a record. Image fields are absent:
// image replacement is not supported in edit mode.
type CrackEditData struct {
	Label          string         `json:"label" validate:"notblank,trimmed_max=100"`
	Description    string         `json:"description"`
	Classification Classification `json:"classification" validate:"required,oneof=Good Fair Poor Bad"`
	Location       string         `json:"location" validate:"required"`
	Datetime       string         `json:"datetime" validate:"required"`
	Length         string         `json:"length"`
	Width          string         `json:"width"`
	Depth          string         `json:"depth"`
}

// ExifData carries the only embedded-metadata field the application consumes.
type ExifData struct {
	Datetime *time.Time `json:"datetime,omitempty"`
}

// UploadedImage is the blob store's answer to a successful upload.
type UploadedImage struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// CustomLocation is a user-added entry in the selectable location list.
type CustomLocation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// RecordEvent is published to kafka after a record mutation succeeds.
type RecordEvent struct {
	Event      string    `json:"event"`
	RecordID   uuid.UUID `json:"record_id"`
	ImagePath  string    `json:"image_path,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventRecordCreated = "record_created"
	EventRecordUpdated = "record_updated"
	EventRecordDeleted = "record_deleted"
)
