package workflow

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ImageResource is a locally held image awaiting upload. It must be released
// exactly once: on replacement, after a successful submission, or on teardown.
type ImageResource interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
	Release() error
}

// SpooledImage buffers a selected image in a temp file so it can be read twice:
// once for metadata extraction and once for the upload itself.
type SpooledImage struct {
	name        string
	contentType string
	size        int64
	path        string

	releaseOnce sync.Once
	releaseErr  error
}

func SpoolImage(name, contentType string, r io.Reader) (*SpooledImage, error) {
	tmp, err := os.CreateTemp("", "crack-image-*")
	if err != nil {
		return nil, fmt.Errorf("failed to spool image: %w", err)
	}

	size, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to spool image: %w", err)
	}

	return &SpooledImage{
		name:        name,
		contentType: contentType,
		size:        size,
		path:        tmp.Name(),
	}, nil
}

func (s *SpooledImage) Name() string        { return s.name }
func (s *SpooledImage) ContentType() string { return s.contentType }
func (s *SpooledImage) Size() int64         { return s.size }

func (s *SpooledImage) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s *SpooledImage) Release() error {
	s.releaseOnce.Do(func() {
		s.releaseErr = os.Remove(s.path)
	})

	return s.releaseErr
}
