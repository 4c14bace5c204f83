package batch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ytthumbs/ytthumbs/youtube"
)

// Row is one line of the markdown table, already escaped for a table cell.
type Row struct {
	ThumbnailURL string
	Title        string
	Description  string
}

// NewRow escapes pipes in title and description and truncates the description
// to limit characters, the last three being an ellipsis. A non-positive limit disables truncation.
func NewRow(meta youtube.Metadata, limit int) Row {
	return Row{
		ThumbnailURL: meta.ThumbnailURL,
		Title:        escapePipes(meta.Title),
		Description:  truncate(escapePipes(meta.Description), limit),
	}
}

// String renders the row as a markdown table line.
func (r Row) String() string {
	return fmt.Sprintf("| %s | %s | %s |", r.ThumbnailURL, r.Title, r.Description)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

const ellipsis = "..."

func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}
