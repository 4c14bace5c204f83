package cmd

import (
	"os"
	"runtime"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytthumbs/ytthumbs/color"
	"github.com/ytthumbs/ytthumbs/constant"
	"github.com/ytthumbs/ytthumbs/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}    {{ bold .Version }}
  {{ faint "Go" }}         {{ bold .Go }}
  {{ faint "Platform" }}   {{ bold .OS }}/{{ bold .Arch }}
`))

// versionCmd displays application version and build platform.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build platform",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Go, OS, Arch string
		}{
			App:     constant.App,
			Version: constant.Version,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		}))
	},
}
