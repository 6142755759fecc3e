// Package photos is the remote photo-library surface: authenticated
// sessions, the paginated search enumerator, album listing, and
// original-quality content downloads.
//
// # Sessions
//
// A Session is one authenticated connection and is not safe for
// concurrent reuse. Concurrent workers obtain independent sessions
// from a Factory built over the shared credential:
//
//	factory := photos.NewFactory(photos.Config{AccessToken: token})
//	session := factory()
//
// # Enumeration
//
// Search returns a Pager that walks the paginated listing lazily and
// stops at a cutoff date, assuming newest-first page order:
//
//	pager := session.Search("", cutoff, conv)
//	for pager.Next(ctx) {
//	    handle(pager.Item())
//	}
//
// The wire types live in the dto subpackage and convert to the model
// types the rest of the pipeline consumes.
package photos
