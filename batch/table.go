package batch

import (
	"strings"

	"github.com/samber/lo"
)

// Table header lines, in order.
const (
	HeaderLine    = "| Thumbnail URL | Video Name | Video Description |"
	SeparatorLine = "|---------------|------------|-------------------|"
)

// Render joins the header and rows with newlines. The result has no trailing newline.
func Render(rows []Row) string {
	lines := append([]string{HeaderLine, SeparatorLine}, lo.Map(rows, func(r Row, _ int) string {
		return r.String()
	})...)

	return strings.Join(lines, "\n")
}
