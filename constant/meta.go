// Package constant defines immutable application-level identifiers and endpoint templates.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "ytthumbs"

	// Version is the current application semantic version string.
	Version = "0.2.0"
)

// YouTube endpoint templates. The single %s verb receives the video identifier.
const (
	WatchURLTemplate     = "https://www.youtube.com/watch?v=%s"
	ThumbnailURLTemplate = "https://img.youtube.com/vi/%s/%s.jpg"
)
