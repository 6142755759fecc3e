// Package localtime converts the remote service's UTC capture
// timestamps into the configured destination timezone.
//
// The conversion is the single source of truth for corrected capture
// times: destination filenames, rewritten EXIF fields, and the cutoff
// comparison during enumeration all go through Converter, so daylight
// saving is handled identically everywhere.
//
//	conv, err := localtime.NewConverter("America/Los_Angeles")
//	stamp, err := conv.Format("2023-08-25T21:03:07Z", localtime.EXIFFormat)
//	// "2023:08:25 14:03:07"
package localtime
