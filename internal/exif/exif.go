package exif

import (
	"io"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	"crackKeeper/internal/models"
)

// EXIF stores timestamps as local time with no zone, e.g. "2024:03:05 10:12:33".
const exifTimeLayout = "2006:01:02 15:04:05"

// inputTimeLayout matches an HTML datetime-local input: zero-padded, 24-hour,
// no seconds, no timezone.
const inputTimeLayout = "2006-01-02T15:04"

// Tag candidates in priority order: original capture time first, then the
// digitization time, then the file modification time.
var datetimeTags = []goexif.FieldName{
	goexif.DateTimeOriginal,
	goexif.DateTimeDigitized,
	goexif.DateTime,
}

type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

// Extract reads embedded metadata and returns the first tag that parses to a
// valid timestamp. Absent or corrupt metadata is an expected, common case and
// yields an empty result rather than an error.
func (Extractor) Extract(r io.Reader) models.ExifData {
	x, err := goexif.Decode(r)
	if err != nil {
		return models.ExifData{}
	}

	for _, tag := range datetimeTags {
		field, err := x.Get(tag)
		if err != nil {
			continue
		}

		value, err := field.StringVal()
		if err != nil {
			continue
		}

		ts, err := time.ParseInLocation(exifTimeLayout, value, time.Local)
		if err != nil {
			continue
		}

		return models.ExifData{Datetime: &ts}
	}

	return models.ExifData{}
}

// FormatForInput renders a timestamp as a datetime-local input value,
// e.g. "2026-03-05T08:09".
func FormatForInput(t time.Time) string {
	return t.Format(inputTimeLayout)
}
