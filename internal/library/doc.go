// Package library reconciles the whole-library listing with per-album
// contents.
//
// Fetcher enumerates every album concurrently, one independent remote
// session per worker, and restores results to canonical album-listing
// order by album id before anything downstream indexes them by
// position.
//
// Resolver assigns each library item exactly one destination label by
// scanning albums in listing order, growing a membership set, and
// applying an ordered, short-circuiting rule list. The precedence
// rules (terminal albums first, then the video/overlap collapse) and
// the size-based reduction of a full scan preserve the upstream
// taxonomy's exact behavior, which the tests pin down.
package library
