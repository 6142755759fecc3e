package model

import (
	"testing"
	"time"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Trip to Osaka", "Trip to Osaka"},
		{"Summer: 2023", "Summer_ 2023"},
		{"a/b\\c", "a_b_c"},
		{"album|with|pipes", "album_with_pipes"},
		{"why?so*many", "why_so_many"},
		{"quoted \"album\"", "quoted _album_"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPathConfig_FolderFor(t *testing.T) {
	cfg := &PathConfig{
		BaseDir:          "/photos",
		UnassignedLabel:  "Not in any album",
		UnassignedFolder: "Not Organized",
	}

	if got := cfg.FolderFor("Trip to Osaka"); got != "/photos/Trip to Osaka" {
		t.Errorf("FolderFor(label) = %q, want %q", got, "/photos/Trip to Osaka")
	}

	if got := cfg.FolderFor("Not in any album"); got != "/photos/Not Organized" {
		t.Errorf("FolderFor(unassigned) = %q, want %q", got, "/photos/Not Organized")
	}

	// Labels with invalid path characters are sanitized.
	if got := cfg.FolderFor("A/B"); got != "/photos/A_B" {
		t.Errorf("FolderFor(slash label) = %q, want %q", got, "/photos/A_B")
	}
}

func TestMediaItem_Ext(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"IMG_2041.JPG", ".jpg"},
		{"clip.MOV", ".mov"},
		{"noext", ""},
		{"archive.tar.PNG", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			m := &MediaItem{Filename: tt.filename}
			if got := m.Ext(); got != tt.want {
				t.Errorf("Ext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMediaItem_IsVideo(t *testing.T) {
	exts := []string{".mov", ".mp4"}

	tests := []struct {
		name     string
		filename string
		label    string
		want     bool
	}{
		{"video label wins", "IMG_1.JPG", "Videos", true},
		{"mov extension", "clip.MOV", "Trip", true},
		{"mp4 extension", "clip.mp4", "", true},
		{"plain photo", "IMG_1.JPG", "Trip", false},
		{"png photo", "shot.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MediaItem{Filename: tt.filename, Label: tt.label}
			if got := m.IsVideo("Videos", exts); got != tt.want {
				t.Errorf("IsVideo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeStampName(t *testing.T) {
	ts := time.Date(2023, 8, 25, 14, 3, 7, 0, time.UTC)

	if got := TimeStampName(ts, ".JPG"); got != "2023-08-25 14.03.07.jpg" {
		t.Errorf("TimeStampName() = %q, want %q", got, "2023-08-25 14.03.07.jpg")
	}

	if got := AnomalyName(ts, ".jpg"); got != "2023-08-25 14.03.07.JPG" {
		t.Errorf("AnomalyName() = %q, want %q", got, "2023-08-25 14.03.07.JPG")
	}
}
