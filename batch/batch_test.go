package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytthumbs/ytthumbs/filesystem"
	"github.com/ytthumbs/ytthumbs/youtube"
)

// stubSource serves canned metadata per identifier; unknown identifiers fail.
type stubSource struct {
	titles  map[string]string
	lookups []string
}

func (s *stubSource) Lookup(_ context.Context, id string) (youtube.Metadata, error) {
	s.lookups = append(s.lookups, id)
	title, ok := s.titles[id]
	if !ok {
		return youtube.Metadata{}, errors.New("page exploded")
	}
	return youtube.Metadata{Title: title, Description: title + " description", ThumbnailURL: youtube.ThumbnailURL(id)}, nil
}

func writeInput(content string) {
	lo.Must0(filesystem.API().WriteFile("urls.txt", []byte(content), 0o644))
}

func TestReadURLs(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Blank lines and surrounding spaces are dropped", func() {
			writeInput("\n  https://youtu.be/dQw4w9WgXcQ  \r\n\n\t\nnot-a-url\n")
			urls, err := ReadURLs("urls.txt")
			So(err, ShouldBeNil)
			So(urls, ShouldResemble, []string{"https://youtu.be/dQw4w9WgXcQ", "not-a-url"})
		})

		Convey("A missing file is reported as not found", func() {
			_, err := ReadURLs("missing.txt")
			So(errors.Is(err, ErrBatchFileNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "missing.txt")
		})

		Convey("A file of blank lines has no URLs", func() {
			writeInput("\n   \n\n")
			_, err := ReadURLs("urls.txt")
			So(errors.Is(err, ErrNoURLs), ShouldBeTrue)
		})
	})

	Convey("Given the OS filesystem", t, func() {
		filesystem.SetOsFs()
		Reset(filesystem.SetMemMapFs)

		Convey("A directory in place of the batch file is a read error, not a missing file", func() {
			_, err := ReadURLs(t.TempDir())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrBatchFileNotFound), ShouldBeFalse)
			So(err.Error(), ShouldContainSubstring, "could not read batch file")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a batch with two valid URLs and one malformed line", t, func() {
		filesystem.SetMemMapFs()
		writeInput("https://www.youtube.com/watch?v=dQw4w9WgXcQ\nnot-a-url\nhttps://youtu.be/9bZkp7q19f0\n")

		source := &stubSource{titles: map[string]string{
			"dQw4w9WgXcQ": "Never Gonna Give You Up",
			"9bZkp7q19f0": "Gangnam | Style",
		}}
		var out, diag bytes.Buffer
		options := &Options{Input: "urls.txt", Source: source, DescriptionLimit: 100, Out: &out, Err: &diag}

		Convey("When printing to standard output", func() {
			report, err := Run(context.Background(), options)

			Convey("Then two rows are produced in file order", func() {
				So(err, ShouldBeNil)
				So(report.Total, ShouldEqual, 3)
				So(len(report.Rows), ShouldEqual, 2)
				So(report.Rows[0].Title, ShouldEqual, "Never Gonna Give You Up")
				So(report.Rows[1].Title, ShouldEqual, `Gangnam \| Style`)
			})

			Convey("And the table is printed with a trailing newline", func() {
				So(out.String(), ShouldEqual, strings.Join([]string{
					HeaderLine,
					SeparatorLine,
					"| https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg | Never Gonna Give You Up | Never Gonna Give You Up description |",
					`| https://img.youtube.com/vi/9bZkp7q19f0/maxresdefault.jpg | Gangnam \| Style | Gangnam \| Style description |`,
				}, "\n")+"\n")
			})

			Convey("And exactly one skip warning is emitted", func() {
				So(len(report.Skipped), ShouldEqual, 1)
				So(report.Skipped[0].URL, ShouldEqual, "not-a-url")
				So(strings.Count(diag.String(), "Warning"), ShouldEqual, 1)
				So(diag.String(), ShouldContainSubstring, "Skipping invalid URL: not-a-url")
			})

			Convey("And the summary goes to the diagnostic stream", func() {
				So(diag.String(), ShouldContainSubstring, "Processed: Never Gonna Give You Up")
				So(diag.String(), ShouldContainSubstring, `Processed: Gangnam \| Style`)
				So(diag.String(), ShouldContainSubstring, "Processed 2 of 3 URLs")
				So(out.String(), ShouldNotContainSubstring, "Processed")
			})

			Convey("And the malformed line never reaches the metadata source", func() {
				So(source.lookups, ShouldResemble, []string{"dQw4w9WgXcQ", "9bZkp7q19f0"})
			})
		})

		Convey("When writing to a nested output file", func() {
			options.Output = "reports/2024/thumbs.md"
			_, err := Run(context.Background(), options)

			Convey("Then the file holds the table and a final newline", func() {
				So(err, ShouldBeNil)
				content := string(lo.Must(filesystem.API().ReadFile("reports/2024/thumbs.md")))
				So(content, ShouldStartWith, HeaderLine+"\n"+SeparatorLine+"\n")
				So(content, ShouldEndWith, "description |\n")
				So(strings.Count(content, "\n"), ShouldEqual, 4)
			})

			Convey("And nothing is printed to standard output", func() {
				So(out.String(), ShouldBeEmpty)
				So(diag.String(), ShouldContainSubstring, "Successfully wrote markdown table to: reports/2024/thumbs.md")
				So(diag.String(), ShouldContainSubstring, "Processed 2 of 3 URLs")
			})
		})

		Convey("When a metadata lookup fails", func() {
			delete(source.titles, "dQw4w9WgXcQ")
			report, err := Run(context.Background(), options)

			Convey("Then the URL is skipped and the batch continues", func() {
				So(err, ShouldBeNil)
				So(len(report.Rows), ShouldEqual, 1)
				So(len(report.Skipped), ShouldEqual, 2)
				So(diag.String(), ShouldContainSubstring, "Error processing https://www.youtube.com/watch?v=dQw4w9WgXcQ: page exploded")
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := Run(ctx, options)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(source.lookups, ShouldBeEmpty)
			So(out.String(), ShouldBeEmpty)
		})
	})

	Convey("Given a batch where nothing can be processed", t, func() {
		filesystem.SetMemMapFs()
		writeInput("not-a-url\nhttps://vimeo.com/1\n")

		var out, diag bytes.Buffer
		options := &Options{Input: "urls.txt", Output: "out.md", Source: &stubSource{}, Out: &out, Err: &diag}

		_, err := Run(context.Background(), options)

		Convey("Then the run fails and no output file is created", func() {
			So(errors.Is(err, ErrNothingProcessed), ShouldBeTrue)
			So(lo.Must(filesystem.API().Exists("out.md")), ShouldBeFalse)
			So(strings.Count(diag.String(), "Warning"), ShouldEqual, 2)
		})
	})

	Convey("Given an empty batch file", t, func() {
		filesystem.SetMemMapFs()
		writeInput("\n\n")

		var out, diag bytes.Buffer
		_, err := Run(context.Background(), &Options{Input: "urls.txt", Output: "out.md", Source: &stubSource{}, Out: &out, Err: &diag})

		Convey("Then it is fatal and no output file is created", func() {
			So(errors.Is(err, ErrNoURLs), ShouldBeTrue)
			So(lo.Must(filesystem.API().Exists("out.md")), ShouldBeFalse)
			So(out.String(), ShouldBeEmpty)
		})
	})
}

func TestRunWriteFailure(t *testing.T) {
	Convey("Given an output path occupied by a directory", t, func() {
		filesystem.SetOsFs()
		Reset(filesystem.SetMemMapFs)

		dir := t.TempDir()
		input := filepath.Join(dir, "urls.txt")
		output := filepath.Join(dir, "thumbs.md")
		lo.Must0(filesystem.API().WriteFile(input, []byte("https://youtu.be/dQw4w9WgXcQ\n"), 0o644))
		lo.Must0(filesystem.API().MkdirAll(filepath.Join(output, "occupied"), 0o755))

		var out, diag bytes.Buffer
		source := &stubSource{titles: map[string]string{"dQw4w9WgXcQ": "Never Gonna Give You Up"}}
		report, err := Run(context.Background(), &Options{Input: input, Output: output, Source: source, Out: &out, Err: &diag})

		Convey("Then the write error is returned with the rows already built", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "could not write to output file")
			So(report, ShouldNotBeNil)
			So(len(report.Rows), ShouldEqual, 1)
		})

		Convey("And no success message or stray temporary file is left", func() {
			So(diag.String(), ShouldNotContainSubstring, "Successfully wrote")
			entries := lo.Must(filesystem.API().ReadDir(dir))
			So(lo.Map(entries, func(e os.FileInfo, _ int) string { return e.Name() }), ShouldResemble, []string{"thumbs.md", "urls.txt"})
		})
	})
}
