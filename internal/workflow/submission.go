package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"crackKeeper/internal/exif"
	"crackKeeper/internal/lib/filename"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/models"
	"crackKeeper/internal/validation"
)

// State of the submission machine. Uploading and Saving are the two remote
// phases; everything else happens in Idle.
type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateSaving    State = "saving"
)

// ExtractionState tracks the metadata sub-state independently of submission.
type ExtractionState int

const (
	ExtractionNotStarted ExtractionState = iota
	ExtractionRunning
	ExtractionDone
)

var (
	ErrInFlight         = errors.New("submission already in progress")
	ErrValidationFailed = errors.New("validation failed")
	ErrUploadFailed     = errors.New("image upload failed")
	ErrSaveFailed       = errors.New("record save failed")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BlobUploader
type BlobUploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader, size int64) (*models.UploadedImage, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RecordCreator
type RecordCreator interface {
	SaveRecord(ctx context.Context, form models.CrackFormData, imageName, imageURL, imagePath string) (*models.CrackRecord, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExifExtractor
type ExifExtractor interface {
	Extract(r io.Reader) models.ExifData
}

// Submission drives one submission form through validate -> upload -> create.
// The two remote writes are a saga with no shared transaction: upload always
// completes before create starts, and a create failure leaves the uploaded
// blob orphaned on purpose.
type Submission struct {
	log       *slog.Logger
	blobs     BlobUploader
	records   RecordCreator
	extractor ExifExtractor

	mu          sync.Mutex
	state       State
	history     []State
	form        models.CrackFormData
	image       ImageResource
	fileExt     string
	errs        map[string]string
	exifData    models.ExifData
	extraction  ExtractionState
	extractDone chan struct{}
}

func NewSubmission(log *slog.Logger, blobs BlobUploader, records RecordCreator, extractor ExifExtractor) *Submission {
	return &Submission{
		log:       log,
		blobs:     blobs,
		records:   records,
		extractor: extractor,
		state:     StateIdle,
		history:   []State{StateIdle},
		errs:      make(map[string]string),
	}
}

// SelectImage replaces any previously selected image, releasing its resource.
// It derives a default image name from the file name (never overwriting a name
// the user already typed) and starts metadata extraction in the background.
func (s *Submission) SelectImage(image ImageResource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.image != nil {
		if err := s.image.Release(); err != nil {
			s.log.Warn("failed to release replaced image", sl.Err(err))
		}
	}

	s.image = image
	delete(s.errs, "image")

	parts := filename.Decompose(image.Name())
	s.fileExt = parts.Extension
	if s.form.ImageName == "" {
		s.form.ImageName = parts.Name
	}

	s.extraction = ExtractionRunning
	done := make(chan struct{})
	s.extractDone = done

	go s.runExtraction(image, done)
}

func (s *Submission) runExtraction(image ImageResource, done chan struct{}) {
	defer close(done)

	var data models.ExifData

	rc, err := image.Open()
	if err != nil {
		// Unreadable spool file; treated like absent metadata.
		s.log.Warn("failed to open image for metadata extraction", sl.Err(err))
	} else {
		data = s.extractor.Extract(rc)
		_ = rc.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.exifData = data
	s.extraction = ExtractionDone

	if data.Datetime != nil && s.form.Datetime == "" {
		s.form.Datetime = exif.FormatForInput(*data.Datetime)
	}
}

// AwaitExtraction blocks until a started extraction finishes. Extraction is
// never on the submission critical path; this only matters for datetime
// auto-fill before validation.
func (s *Submission) AwaitExtraction() {
	s.mu.Lock()
	done := s.extractDone
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (s *Submission) SetLabel(v string)       { s.setField(func(f *models.CrackFormData) { f.Label = v }, "label") }
func (s *Submission) SetDescription(v string) { s.setField(func(f *models.CrackFormData) { f.Description = v }, "description") }
func (s *Submission) SetLocation(v string)    { s.setField(func(f *models.CrackFormData) { f.Location = v }, "location") }
func (s *Submission) SetDatetime(v string)    { s.setField(func(f *models.CrackFormData) { f.Datetime = v }, "datetime") }
func (s *Submission) SetLength(v string)      { s.setField(func(f *models.CrackFormData) { f.Length = v }, "length") }
func (s *Submission) SetWidth(v string)       { s.setField(func(f *models.CrackFormData) { f.Width = v }, "width") }
func (s *Submission) SetDepth(v string)       { s.setField(func(f *models.CrackFormData) { f.Depth = v }, "depth") }

func (s *Submission) SetClassification(v models.Classification) {
	s.setField(func(f *models.CrackFormData) { f.Classification = v }, "classification")
}

func (s *Submission) SetImageName(v string) {
	s.setField(func(f *models.CrackFormData) { f.ImageName = v }, "imageName")
}

func (s *Submission) setField(apply func(*models.CrackFormData), key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.form)
	delete(s.errs, key)
}

// Submit runs the saga. Validation failures abort before any remote call; an
// upload failure creates no record; a create failure orphans the uploaded blob
// (accepted, logged). In every failure case the form is preserved for retry.
func (s *Submission) Submit(ctx context.Context) (*models.CrackRecord, error) {
	s.mu.Lock()

	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, ErrInFlight
	}

	form := s.form
	image := s.image
	fullImageName := form.ImageName + s.fileExt

	errs := validation.ValidateSubmission(form, image != nil)
	if validation.HasErrors(errs) {
		s.errs = errs
		s.mu.Unlock()
		return nil, ErrValidationFailed
	}

	s.toState(StateUploading)
	s.mu.Unlock()

	uploaded, err := s.uploadImage(ctx, image, fullImageName)
	if err != nil {
		s.failTo(StateIdle)
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}

	s.mu.Lock()
	s.toState(StateSaving)
	s.mu.Unlock()

	record, err := s.records.SaveRecord(ctx, form, fullImageName, uploaded.URL, uploaded.Path)
	if err != nil {
		// The blob is now orphaned; no compensating delete, only evidence.
		s.log.Warn("record create failed after upload, blob left orphaned",
			slog.String("image_path", uploaded.Path),
			sl.Err(err),
		)
		s.failTo(StateIdle)
		return nil, fmt.Errorf("%w: %s", ErrSaveFailed, err)
	}

	s.reset()

	return record, nil
}

func (s *Submission) uploadImage(ctx context.Context, image ImageResource, fullImageName string) (*models.UploadedImage, error) {
	rc, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return s.blobs.Upload(ctx, fullImageName, image.ContentType(), rc, image.Size())
}

// reset returns the form to its empty initial state after success, releasing
// the local image resource.
func (s *Submission) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.image != nil {
		if err := s.image.Release(); err != nil {
			s.log.Warn("failed to release image after submit", sl.Err(err))
		}
		s.image = nil
	}

	s.form = models.CrackFormData{}
	s.fileExt = ""
	s.errs = make(map[string]string)
	s.exifData = models.ExifData{}
	s.extraction = ExtractionNotStarted
	s.extractDone = nil

	s.toState(StateIdle)
}

// Teardown releases the held image without touching the rest of the form.
func (s *Submission) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.image != nil {
		if err := s.image.Release(); err != nil {
			s.log.Warn("failed to release image on teardown", sl.Err(err))
		}
		s.image = nil
	}
}

func (s *Submission) failTo(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toState(state)
}

// toState must be called with the lock held.
func (s *Submission) toState(state State) {
	s.state = state
	s.history = append(s.history, state)
}

func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// StateHistory returns every state the machine has passed through, in order.
func (s *Submission) StateHistory() []State {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]State, len(s.history))
	copy(history, s.history)

	return history
}

func (s *Submission) FormData() models.CrackFormData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.form
}

// Errors returns the field error map from the last failed validation.
func (s *Submission) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.errs))
	for k, v := range s.errs {
		errs[k] = v
	}

	return errs
}

func (s *Submission) Extraction() ExtractionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.extraction
}

func (s *Submission) ExifData() models.ExifData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exifData
}

func (s *Submission) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.image != nil
}
