package exif

import (
	"fmt"

	"github.com/barasher/go-exiftool"
)

// Tool wraps a long-lived exiftool process for capture-time repair.
//
// One Tool drives one exiftool subprocess. The underlying library
// serializes concurrent ExtractMetadata/WriteMetadata calls against
// that subprocess internally, so download workers share a single Tool.
type Tool struct {
	et *exiftool.Exiftool
}

// NewTool starts the exiftool subprocess. The caller must Close the
// Tool when done with it.
func NewTool() (*Tool, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("initialize exiftool: %w", err)
	}
	return &Tool{et: et}, nil
}

// Close shuts down the exiftool subprocess.
func (t *Tool) Close() error {
	return t.et.Close()
}

// FixCaptureTime overwrites the file's capture-time fields (original
// and digitized) with stamp, formatted per localtime.EXIFFormat.
//
// The returned bool reports whether the metadata was synthesized: true
// when the file had no readable DateTimeOriginal beforehand, false
// when an existing value was repaired. Corrupt or unreadable metadata
// counts as absent and takes the synthesis path rather than failing.
func (t *Tool) FixCaptureTime(path, stamp string) (bool, error) {
	synthesized := false
	metas := t.et.ExtractMetadata(path)
	if len(metas) != 1 || metas[0].Err != nil {
		synthesized = true
	} else if _, err := metas[0].GetString("DateTimeOriginal"); err != nil {
		synthesized = true
	}

	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	fm.SetString("EXIF:DateTimeOriginal", stamp)
	fm.SetString("EXIF:CreateDate", stamp)

	t.et.WriteMetadata([]exiftool.FileMetadata{fm})
	if fm.Err != nil {
		return synthesized, fmt.Errorf("write capture time to %s: %w", path, fm.Err)
	}
	return synthesized, nil
}

// PatchPNGCreationTime writes the PNG-native CreationTime tag, which
// the generic capture-time fields do not cover. Callers treat a
// failure here as non-fatal to the item.
func (t *Tool) PatchPNGCreationTime(path, stamp string) error {
	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	fm.SetString("PNG:CreationTime", stamp)

	t.et.WriteMetadata([]exiftool.FileMetadata{fm})
	if fm.Err != nil {
		return fmt.Errorf("patch PNG creation time on %s: %w", path, fm.Err)
	}
	return nil
}
