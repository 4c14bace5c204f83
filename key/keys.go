// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Metadata Retrieval - these keys govern how watch pages are fetched and scraped.
const (
	MetadataTimeout = "metadata.timeout"
	MetadataParser  = "metadata.parser"
)

// Thumbnail Download - these keys tune the quality fallback heuristic.
const (
	DownloadPlaceholderSize = "download.placeholder_size"
)

// Batch Mode - these keys shape the generated markdown table.
const (
	BatchDescriptionLimit = "batch.description_limit"
)

// Iconography - these keys manage the visual rendering of feedback symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
