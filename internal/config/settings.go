package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"photosort/internal/library"
	"photosort/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadsPath             string  `json:"downloads_path"`
	CutoffDate                string  `json:"cutoff_date"` // YYYY-MM-DD in the destination timezone; empty means no cutoff
	Timezone                  string  `json:"timezone"`
	MaxConcurrentAlbumFetches int     `json:"max_concurrent_album_fetches"` // 0 means one per CPU
	MaxConcurrentDownloads    int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries        int     `json:"download_max_retries"`
	DownloadRetryCooldown     float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent     float64 `json:"download_retry_exponent"`
	AbortOnAlbumError         bool    `json:"abort_on_album_error"`

	// Remote service
	APIBaseURL    string `json:"api_base_url"`
	PageSize      int    `json:"page_size"`
	AlbumPageSize int    `json:"album_page_size"`

	// Label taxonomy
	TerminalAlbums   []string `json:"terminal_albums"`
	VideoAlbum       string   `json:"video_album"`
	CombinedLabel    string   `json:"combined_label"`
	UnassignedLabel  string   `json:"unassigned_label"`
	UnassignedFolder string   `json:"unassigned_folder"`
	VideoExtensions  []string `json:"video_extensions"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DownloadsPath:             filepath.Join(homeDir, "Pictures", "PhotoSort"),
		CutoffDate:                "",
		Timezone:                  "America/Los_Angeles",
		MaxConcurrentAlbumFetches: 0,
		MaxConcurrentDownloads:    10,
		DownloadMaxRetries:        7,
		DownloadRetryCooldown:     0.2,
		DownloadRetryExponent:     4.0,
		AbortOnAlbumError:         true,

		PageSize:      20,
		AlbumPageSize: 50,

		TerminalAlbums:   []string{"Random People", "Unspecified"},
		VideoAlbum:       "Videos",
		CombinedLabel:    "Group Stuff",
		UnassignedLabel:  "Not in any album",
		UnassignedFolder: "Not Organized",
		VideoExtensions:  []string{".mov", ".mp4"},
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Cutoff parses CutoffDate as a calendar date in loc, the destination
// timezone. An empty CutoffDate means no bound and returns the zero
// time, which no item precedes.
func (s *Settings) Cutoff(loc *time.Location) (time.Time, error) {
	if s.CutoffDate == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s.CutoffDate, loc)
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		BaseDir:          s.DownloadsPath,
		UnassignedLabel:  s.UnassignedLabel,
		UnassignedFolder: s.UnassignedFolder,
	}
}

// ToResolveConfig converts settings to the resolver's label taxonomy.
// The overlap threshold is fixed; it is part of the labeling behavior,
// not a tunable.
func (s *Settings) ToResolveConfig() library.ResolveConfig {
	return library.ResolveConfig{
		TerminalTitles:   s.TerminalAlbums,
		VideoTitle:       s.VideoAlbum,
		OverlapThreshold: 3,
		CombinedLabel:    s.CombinedLabel,
		UnassignedLabel:  s.UnassignedLabel,
	}
}

// ToFetchConfig converts settings to the album-fetch policy. The
// caller attaches its own warning callback.
func (s *Settings) ToFetchConfig() library.FetchConfig {
	return library.FetchConfig{
		Limit:        s.MaxConcurrentAlbumFetches,
		AbortOnError: s.AbortOnAlbumError,
	}
}
