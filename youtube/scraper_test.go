package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const watchPage = `<!DOCTYPE html><html><head>
<meta property="og:site_name" content="YouTube">
<meta property="og:title" content="Rick Astley - Never Gonna Give You Up (Official Video)">
<meta property="og:description" content="The official video for “Never Gonna Give You Up” by Rick Astley">
<meta property="og:title" content="second title">
</head><body></body></html>`

func TestScrapers(t *testing.T) {
	for name, scraper := range scrapers {
		Convey("Given the "+name+" scraper", t, func() {
			Convey("It reads the first og:title and og:description", func() {
				title, description := scraper.Scrape([]byte(watchPage))
				So(title, ShouldEqual, "Rick Astley - Never Gonna Give You Up (Official Video)")
				So(description, ShouldEqual, "The official video for “Never Gonna Give You Up” by Rick Astley")
			})

			Convey("It yields empty strings when the tags are missing", func() {
				title, description := scraper.Scrape([]byte("<html><head><title>x</title></head></html>"))
				So(title, ShouldBeEmpty)
				So(description, ShouldBeEmpty)
			})

			Convey("It tolerates an empty page", func() {
				title, description := scraper.Scrape(nil)
				So(title, ShouldBeEmpty)
				So(description, ShouldBeEmpty)
			})
		})
	}

	Convey("Given a page with encoded entities", t, func() {
		page := []byte(`<meta property="og:title" content="Tom &amp; Jerry">`)

		Convey("The regex scraper keeps them verbatim", func() {
			title, _ := RegexScraper{}.Scrape(page)
			So(title, ShouldEqual, "Tom &amp; Jerry")
		})

		Convey("The goquery scraper decodes them", func() {
			title, _ := GoqueryScraper{}.Scrape(page)
			So(title, ShouldEqual, "Tom & Jerry")
		})
	})

	Convey("Given attributes in a different order", t, func() {
		page := []byte(`<meta content="Reordered" property="og:title">`)

		Convey("Only the goquery scraper finds them", func() {
			title, _ := RegexScraper{}.Scrape(page)
			So(title, ShouldBeEmpty)

			title, _ = GoqueryScraper{}.Scrape(page)
			So(title, ShouldEqual, "Reordered")
		})
	})
}

func TestScraperByName(t *testing.T) {
	Convey("ScraperByName", t, func() {
		So(ScraperNames(), ShouldResemble, []string{"goquery", "regex"})

		s, err := ScraperByName("regex")
		So(err, ShouldBeNil)
		So(s, ShouldHaveSameTypeAs, RegexScraper{})

		_, err = ScraperByName("xpath")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "xpath")
	})
}
