// Package httpx provides the authenticated HTTP client used for both
// the photo service's JSON endpoints and raw content downloads.
//
// A Client corresponds to one remote session. Sessions are not safe
// for concurrent reuse across album-fetch workers; each worker builds
// its own Client from the shared credential. The download phase, by
// contrast, deliberately shares one Client (and thus one connection
// pool) across all item tasks.
package httpx
