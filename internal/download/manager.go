package download

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"photosort/internal/config"
	"photosort/internal/ioutils"
	"photosort/internal/library"
	"photosort/internal/localtime"
	"photosort/internal/model"
	"photosort/internal/photos"
	"photosort/internal/report"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// MetadataEditor repairs capture-time metadata on a staged file.
// exif.Tool implements it; tests substitute fakes.
type MetadataEditor interface {
	FixCaptureTime(path, stamp string) (synthesized bool, err error)
	PatchPNGCreationTime(path, stamp string) error
}

// Manager coordinates the whole run: enumeration, album fetch,
// membership resolution, and the bounded-concurrency download/repair
// phase.
type Manager struct {
	settings *config.Settings
	conv     *localtime.Converter
	session  *photos.Session
	fetcher  *library.Fetcher
	resolver *library.Resolver
	editor   MetadataEditor
	recorder *report.Recorder
	paths    *model.PathConfig

	items []model.MediaItem

	totalFiles      int32
	downloadedFiles int32
	failedFiles     int32
	receivedBytes   int64

	fetchElapsed    time.Duration
	downloadElapsed time.Duration

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager over the given settings and access
// token. editor may be nil, in which case metadata repair is skipped
// (useful for dry runs).
func NewManager(settings *config.Settings, token string, editor MetadataEditor, onProgress func(ProgressEvent)) (*Manager, error) {
	conv, err := localtime.NewConverter(settings.Timezone)
	if err != nil {
		return nil, err
	}

	cfg := photos.Config{
		AccessToken:   token,
		BaseURL:       settings.APIBaseURL,
		PageSize:      settings.PageSize,
		AlbumPageSize: settings.AlbumPageSize,
	}
	factory := photos.NewFactory(cfg)
	recorder := report.NewRecorder()

	m := &Manager{
		settings:   settings,
		conv:       conv,
		session:    factory(),
		resolver:   library.NewResolver(settings.ToResolveConfig(), conv, recorder),
		editor:     editor,
		recorder:   recorder,
		paths:      settings.ToPathConfig(),
		onProgress: onProgress,
	}

	fetchCfg := settings.ToFetchConfig()
	fetchCfg.OnWarning = func(album model.Album, err error) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching album %s: %v (skipping)", album.Title, err), Level: LevelWarning})
	}
	m.fetcher = library.NewFetcher(func() library.Source { return factory() }, conv, fetchCfg)

	return m, nil
}

// Initialize enumerates the library and albums, fetches every album's
// contents concurrently, and resolves each item's destination label.
// After Initialize returns, every item carries exactly one label.
func (m *Manager) Initialize(ctx context.Context) error {
	cutoff, err := m.settings.Cutoff(m.conv.Location())
	if err != nil {
		return fmt.Errorf("parse cutoff date: %w", err)
	}

	m.progress(ProgressEvent{Message: "Enumerating library...", Level: LevelInfo})
	items, err := m.session.Search("", cutoff, m.conv).Drain(ctx)
	if err != nil {
		return fmt.Errorf("enumerate library: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d media item(s)", len(items)), Level: LevelInfo})

	albums, err := m.session.ListAlbums(ctx)
	if err != nil {
		return fmt.Errorf("list albums: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d album(s), fetching contents...", len(albums)), Level: LevelInfo})

	fetchStart := time.Now()
	contents, err := m.fetcher.FetchAll(ctx, albums, cutoff)
	if err != nil {
		return err
	}
	m.fetchElapsed = time.Since(fetchStart)

	resolved, err := m.resolver.Resolve(items, albums, contents)
	if err != nil {
		return err
	}

	m.items = resolved
	m.totalFiles = int32(len(resolved))
	return nil
}

// Start downloads and repairs every labeled item with bounded
// concurrency. Item failures are recorded and do not stop siblings.
func (m *Manager) Start(ctx context.Context) error {
	downloadStart := time.Now()
	defer func() { m.downloadElapsed = time.Since(downloadStart) }()

	limit := m.settings.MaxConcurrentDownloads
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range m.items {
		item := m.items[i]
		g.Go(func() error {
			if err := m.materialize(ctx, &item); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error materializing %s: %v", item.Filename, err), Level: LevelError})
				atomic.AddInt32(&m.failedFiles, 1)
				return nil // continue with other items
			}
			atomic.AddInt32(&m.downloadedFiles, 1)
			return nil
		})
	}

	return g.Wait()
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (receivedBytes int64, filesDone, filesFailed, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes),
		atomic.LoadInt32(&m.downloadedFiles),
		atomic.LoadInt32(&m.failedFiles),
		m.totalFiles
}

// LabelCounts returns how many items resolved to each label. Useful
// for a dry run that reports the plan without downloading.
func (m *Manager) LabelCounts() map[string]int {
	counts := make(map[string]int)
	for i := range m.items {
		counts[m.items[i].Label]++
	}
	return counts
}

// Summary builds the final run report from the anomaly accumulators
// and phase timings. Call it only after Start has returned.
func (m *Manager) Summary() *report.Summary {
	noEXIF, noAlbum := m.recorder.Snapshot()
	return &report.Summary{
		NoEXIF:         noEXIF,
		NoAlbum:        noAlbum,
		AlbumFetchTime: m.fetchElapsed,
		DownloadTime:   m.downloadElapsed,
		Downloaded:     int(atomic.LoadInt32(&m.downloadedFiles)),
		Failed:         int(atomic.LoadInt32(&m.failedFiles)),
	}
}

// materialize takes one labeled item to its terminal state: fetched,
// staged under its album folder, metadata repaired or synthesized,
// then renamed to its timestamp-derived final name. Rename replaces
// any existing file, so reruns converge on the same destination.
func (m *Manager) materialize(ctx context.Context, item *model.MediaItem) error {
	local, err := m.conv.Convert(item.CreationTime)
	if err != nil {
		return err
	}
	isVideo := item.IsVideo(m.settings.VideoAlbum, m.settings.VideoExtensions)

	folder := m.paths.FolderFor(item.Label)
	if err := ioutils.EnsureDir(folder); err != nil {
		return fmt.Errorf("create album folder: %w", err)
	}

	data, err := m.downloadWithRetry(ctx, item, isVideo)
	if err != nil {
		return err
	}

	staged := filepath.Join(folder, item.Filename)
	if err := ioutils.WriteFile(ctx, staged, data); err != nil {
		return fmt.Errorf("stage file: %w", err)
	}

	if !isVideo && m.editor != nil {
		m.repairMetadata(staged, item, local, data)
	}

	final := filepath.Join(folder, model.TimeStampName(local, item.Ext()))
	if err := ioutils.Replace(ctx, staged, final); err != nil {
		return fmt.Errorf("rename to final name: %w", err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Materialized: %s", filepath.Base(final)), Level: LevelVerbose})
	return nil
}

// repairMetadata overwrites the staged image's capture-time fields
// with the corrected local time. Synthesized metadata (the image had
// none) is recorded as an anomaly, and PNGs additionally get their
// native creation-time tag patched. Metadata failures never fail the
// item.
func (m *Manager) repairMetadata(staged string, item *model.MediaItem, local time.Time, data []byte) {
	stamp := local.Format(localtime.EXIFFormat)

	synthesized, err := m.editor.FixCaptureTime(staged, stamp)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error repairing metadata for %s: %v", item.Filename, err), Level: LevelWarning})
		return
	}
	if !synthesized {
		return
	}

	m.recorder.NoEXIF(model.AnomalyName(local, item.Ext()), stamp)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Synthesized capture time for %s", item.Filename), Level: LevelVerbose})

	if format, err := ioutils.DetectImage(data); err == nil && format == "png" {
		if err := m.editor.PatchPNGCreationTime(staged, stamp); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error patching PNG creation time for %s: %v", item.Filename, err), Level: LevelWarning})
		}
	}
}

func (m *Manager) downloadWithRetry(ctx context.Context, item *model.MediaItem, isVideo bool) ([]byte, error) {
	retries := m.settings.DownloadMaxRetries
	if retries < 1 {
		retries = 1
	}

	var data []byte
	var err error
	for tries := 0; tries < retries; tries++ {
		var prev int64
		data, err = m.session.DownloadOriginal(ctx, item, isVideo, func(written, _ int64) {
			atomic.AddInt64(&m.receivedBytes, written-prev)
			prev = written
		})
		if err == nil {
			return data, nil
		}
		// The failed attempt's partial bytes must not stay in the
		// counter; the retry counts its own from zero.
		atomic.AddInt64(&m.receivedBytes, -prev)
		if tries < retries-1 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, retries-1, item.Filename), Level: LevelWarning})
			m.waitForRetry(ctx, tries)
		}
	}
	return nil, err
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
