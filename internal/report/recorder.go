package report

import (
	"sync"

	"photosort/internal/model"
)

// Recorder accumulates anomaly records from many concurrent item
// tasks.
//
// The two lists it guards are appended to from the resolver (no-album
// items) and from download workers (no-EXIF items); all appends go
// through a mutex so the accumulators stay consistent under the
// download phase's concurrency. The orchestrator reads them only
// after all tasks have joined.
type Recorder struct {
	mu      sync.Mutex
	noEXIF  []model.NoEXIFRecord
	noAlbum []model.NoAlbumRecord
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NoEXIF records an image whose capture metadata had to be
// synthesized. name is the timestamp-derived filename; capturedAt is
// the corrected capture time that was written.
func (r *Recorder) NoEXIF(name, capturedAt string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noEXIF = append(r.noEXIF, model.NoEXIFRecord{Name: name, CapturedAt: capturedAt})
}

// NoAlbum records an item that matched no album.
func (r *Recorder) NoAlbum(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noAlbum = append(r.noAlbum, model.NoAlbumRecord{Name: name})
}

// Snapshot returns copies of both anomaly lists in insertion order.
func (r *Recorder) Snapshot() ([]model.NoEXIFRecord, []model.NoAlbumRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	noEXIF := make([]model.NoEXIFRecord, len(r.noEXIF))
	copy(noEXIF, r.noEXIF)
	noAlbum := make([]model.NoAlbumRecord, len(r.noAlbum))
	copy(noAlbum, r.noAlbum)
	return noEXIF, noAlbum
}
