package localtime

import (
	"errors"
	"fmt"
	"time"
)

// InputFormat is the fixed UTC timestamp layout the remote service
// uses for capture times.
const InputFormat = "2006-01-02T15:04:05Z"

// EXIFFormat is the layout written into EXIF capture-time fields.
const EXIFFormat = "2006:01:02 15:04:05"

// ErrMalformedTimestamp is returned when a service timestamp does not
// match the expected UTC layout.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Converter converts service-supplied UTC timestamps into a fixed
// destination timezone that observes daylight saving.
//
// Converter is pure and safe for concurrent use: the location is
// loaded once and conversions share no mutable state. DST handling
// follows the IANA timezone database, so the same UTC instant always
// maps to the same local representation across a run.
//
// Example:
//
//	conv, _ := localtime.NewConverter("America/Los_Angeles")
//	t, err := conv.Convert("2023-08-25T21:03:07Z")
//	// t is 2023-08-25 14:03:07 -0700 PDT
type Converter struct {
	loc *time.Location
}

// NewConverter loads the destination timezone by IANA name.
func NewConverter(zone string) (*Converter, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return &Converter{loc: loc}, nil
}

// Location returns the destination timezone.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Convert parses a UTC timestamp string and re-expresses it in the
// destination timezone. Returns ErrMalformedTimestamp (wrapped) if the
// input does not match InputFormat.
func (c *Converter) Convert(utc string) (time.Time, error) {
	t, err := time.Parse(InputFormat, utc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, utc)
	}
	return t.In(c.loc), nil
}

// Format converts a UTC timestamp string and formats the result with
// the given layout. A convenience over Convert for callers that only
// need the string form.
func (c *Converter) Format(utc, layout string) (string, error) {
	t, err := c.Convert(utc)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
