package model

import (
	"path/filepath"
	"strings"
	"time"
)

// TimeNameFormat is the layout used for destination filenames derived
// from the corrected capture time, e.g. "2023-08-25 14.03.07".
const TimeNameFormat = "2006-01-02 15.04.05"

// MediaItem represents one photo or video in the remote library.
//
// MediaItem carries everything the pipeline needs to materialize the
// item locally:
//   - ID for cross-referencing against per-album listings
//   - Filename for the staging file and extension handling
//   - CreationTime, the service-supplied UTC timestamp string
//   - BaseURL, the content URL before the quality-variant suffix
//   - Label, the destination album label attached by the resolver
//
// Items are created by enumeration with Label unset; the resolver
// attaches exactly one label before the item reaches the downloader.
//
// Example:
//
//	item := model.MediaItem{
//	    ID:           "AHV3...",
//	    Filename:     "IMG_2041.JPG",
//	    CreationTime: "2023-08-25T21:03:07Z",
//	    BaseURL:      "https://lh3.googleusercontent.com/...",
//	}
type MediaItem struct {
	// ID is the opaque, service-assigned identifier. Identity for
	// membership resolution.
	ID string

	// Filename is the original filename as uploaded.
	Filename string

	// CreationTime is the capture timestamp in UTC, as returned by the
	// service (e.g. "2023-08-25T21:03:07Z").
	CreationTime string

	// BaseURL is the content URL without a variant suffix.
	BaseURL string

	// Label is the resolved destination album label. Empty until the
	// resolver has run.
	Label string
}

// Ext returns the item's file extension, lower-cased and including the
// dot. Destination filenames use this form.
func (m *MediaItem) Ext() string {
	return strings.ToLower(filepath.Ext(m.Filename))
}

// IsVideo reports whether the item should be treated as a video.
//
// An item counts as video when its resolved label equals videoLabel or
// its extension appears in videoExts. This mirrors the upstream
// library's own taxonomy, where the video album is authoritative even
// for container formats that could hold stills.
func (m *MediaItem) IsVideo(videoLabel string, videoExts []string) bool {
	if m.Label != "" && m.Label == videoLabel {
		return true
	}
	ext := m.Ext()
	for _, v := range videoExts {
		if ext == v {
			return true
		}
	}
	return false
}

// TimeStampName derives the destination filename for a corrected
// capture time: the formatted local time plus the lower-cased original
// extension.
//
// Example:
//
//	t := time.Date(2023, 8, 25, 14, 3, 7, 0, loc)
//	model.TimeStampName(t, ".jpg") // "2023-08-25 14.03.07.jpg"
func TimeStampName(t time.Time, ext string) string {
	return t.Format(TimeNameFormat) + strings.ToLower(ext)
}

// AnomalyName derives the name used in anomaly listings for an item.
// It matches TimeStampName except the extension is upper-cased, which
// makes anomalous items stand out in the final report.
func AnomalyName(t time.Time, ext string) string {
	return t.Format(TimeNameFormat) + strings.ToUpper(ext)
}
