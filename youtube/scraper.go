package youtube

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/ytthumbs/ytthumbs/util"
)

// Scraper reads the Open Graph title and description out of a watch page.
// Missing tags yield empty strings.
type Scraper interface {
	Scrape(page []byte) (title, description string)
}

// RegexScraper matches the first og:title and og:description meta tags with fixed patterns.
// Attribute text is returned verbatim, entities included.
type RegexScraper struct{}

var (
	ogTitle       = regexp.MustCompile(`<meta\s+property="og:title"\s+content="(?P<content>[^"]*)"`)
	ogDescription = regexp.MustCompile(`<meta\s+property="og:description"\s+content="(?P<content>[^"]*)"`)
)

func (RegexScraper) Scrape(page []byte) (title, description string) {
	html := string(page)
	return util.ReGroups(ogTitle, html)["content"], util.ReGroups(ogDescription, html)["content"]
}

// GoqueryScraper reads the same tags through an HTML parser, so attribute order
// and quoting do not matter and entities are decoded.
type GoqueryScraper struct{}

func (GoqueryScraper) Scrape(page []byte) (title, description string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", ""
	}

	content := func(property string) string {
		value, _ := doc.Find(fmt.Sprintf("meta[property=%q]", property)).First().Attr("content")
		return value
	}

	return content("og:title"), content("og:description")
}

var scrapers = map[string]Scraper{
	"regex":   RegexScraper{},
	"goquery": GoqueryScraper{},
}

// ScraperNames lists the names accepted by ScraperByName.
func ScraperNames() []string {
	names := lo.Keys(scrapers)
	sort.Strings(names)
	return names
}

// ScraperByName returns the scraper registered under name.
func ScraperByName(name string) (Scraper, error) {
	s, ok := scrapers[name]
	if !ok {
		return nil, fmt.Errorf("unknown metadata parser %q, expected one of %v", name, ScraperNames())
	}
	return s, nil
}
