package report

import (
	"fmt"
	"strings"
	"time"

	"photosort/internal/model"
)

// Summary is the final run report: both anomaly listings plus phase
// timings and file counts.
type Summary struct {
	// NoEXIF lists images whose capture metadata was synthesized.
	NoEXIF []model.NoEXIFRecord

	// NoAlbum lists items that matched no album.
	NoAlbum []model.NoAlbumRecord

	// AlbumFetchTime is the elapsed time of the concurrent album-fetch
	// phase.
	AlbumFetchTime time.Duration

	// DownloadTime is the elapsed time of the download/repair phase.
	DownloadTime time.Duration

	// Downloaded and Failed count materialized and failed items.
	Downloaded int
	Failed     int
}

// Render formats the summary for human consumption.
//
// The output enumerates every anomaly; partial-failure counts are
// never dropped silently.
func (s *Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Album fetch time: %s\n", s.AlbumFetchTime.Round(time.Millisecond))
	fmt.Fprintf(&b, "Download time: %s\n", s.DownloadTime.Round(time.Millisecond))
	fmt.Fprintf(&b, "Materialized %d item(s)", s.Downloaded)
	if s.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", s.Failed)
	}
	b.WriteString("\n")

	if len(s.NoEXIF) > 0 {
		fmt.Fprintf(&b, "\nThe following image%s had no EXIF data and data was created automatically:\n", plural(len(s.NoEXIF)))
		for _, rec := range s.NoEXIF {
			fmt.Fprintf(&b, "  %s -> Date Taken: %s\n", rec.Name, rec.CapturedAt)
		}
	}

	if len(s.NoAlbum) > 0 {
		verb := "was"
		if len(s.NoAlbum) > 1 {
			verb = "were"
		}
		fmt.Fprintf(&b, "\nThe following image%s did not belong to any album and %s not organized:\n", plural(len(s.NoAlbum)), verb)
		for _, rec := range s.NoAlbum {
			fmt.Fprintf(&b, "  %s\n", rec.Name)
		}
	}

	b.WriteString("\nNOTE: PNG images may use the CreationTime tag instead of the supplied EXIF. This is accounted for.\n")

	return b.String()
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
