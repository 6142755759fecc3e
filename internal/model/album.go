package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Album represents one user-defined album in the remote library.
//
// Albums are immutable once fetched. Their position in the canonical
// album listing is load-bearing: membership resolution scans albums in
// listing order and the tie-break rules are order-sensitive.
type Album struct {
	// ID is the opaque, service-assigned album identifier.
	ID string

	// Title is the user-visible album title, used as the destination
	// label and folder name.
	Title string
}

// AlbumContents holds the media items belonging to one album, tagged
// with the album id so results from unordered concurrent fetches can
// be restored to canonical listing order before resolution.
type AlbumContents struct {
	// AlbumID identifies the album these items belong to.
	AlbumID string

	// Items are the album's media items, in the order the listing
	// endpoint returned them.
	Items []MediaItem
}

// PathConfig holds the destination-tree settings used to compute where
// a resolved item is written.
//
// Example:
//
//	cfg := &model.PathConfig{
//	    BaseDir:          "/photos",
//	    UnassignedLabel:  "Not in any album",
//	    UnassignedFolder: "Not Organized",
//	}
//	cfg.FolderFor("Trip to Osaka")    // "/photos/Trip to Osaka"
//	cfg.FolderFor("Not in any album") // "/photos/Not Organized"
type PathConfig struct {
	// BaseDir is the root of the destination tree.
	BaseDir string

	// UnassignedLabel is the sentinel label attached to items that
	// matched no album.
	UnassignedLabel string

	// UnassignedFolder is the folder name unassigned items are
	// materialized under.
	UnassignedFolder string
}

// FolderFor returns the destination directory for a resolved label.
// The unassigned sentinel maps to the dedicated unorganized folder;
// every other label maps to a folder named after it, sanitized for the
// local filesystem.
func (c *PathConfig) FolderFor(label string) string {
	name := label
	if label == c.UnassignedLabel {
		name = c.UnassignedFolder
	}
	return filepath.Join(c.BaseDir, sanitizeFileName(name))
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
