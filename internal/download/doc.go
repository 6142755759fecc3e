// Package download orchestrates a full run: library enumeration,
// concurrent album fetch, membership resolution, and the
// bounded-concurrency download/repair phase.
//
// The Manager is the top-level coordinator used by both the CLI and
// the TUI:
//
//	manager, err := download.NewManager(settings, token, editor, onProgress)
//	if err != nil { ... }
//	if err := manager.Initialize(ctx); err != nil { ... }
//	if err := manager.Start(ctx); err != nil { ... }
//	fmt.Print(manager.Summary().Render())
//
// Initialize runs the metadata phases and leaves every item labeled;
// Start materializes them. A failed item is recorded and never stops
// its siblings; a failed album fetch aborts the run or degrades to an
// empty album depending on settings.
//
// Progress is reported through a callback so frontends can render it
// their own way:
//
//	manager, _ := download.NewManager(settings, token, editor, func(e download.ProgressEvent) {
//	    if e.Level != download.LevelVerbose {
//	        fmt.Println(e.Message)
//	    }
//	})
package download
