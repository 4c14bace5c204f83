// Package cmd implements the command-line interface for ytthumbs.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytthumbs/ytthumbs/batch"
	"github.com/ytthumbs/ytthumbs/constant"
	"github.com/ytthumbs/ytthumbs/icon"
	"github.com/ytthumbs/ytthumbs/key"
	"github.com/ytthumbs/ytthumbs/log"
	"github.com/ytthumbs/ytthumbs/single"
	"github.com/ytthumbs/ytthumbs/youtube"
)

var (
	errBothModes       = errors.New("cannot use both URL argument and --batch flag. Choose one mode")
	errNoMode          = errors.New("either provide a URL or use --batch flag with a file")
	errDownloadInBatch = errors.New("--download flag is not supported in batch mode")
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("batch", "b", "", "Batch mode: process URLs from `FILE` (one per line) and output a markdown table")
	rootCmd.Flags().BoolP("download", "d", false, "Download the thumbnail instead of printing the URL (single URL mode only)")
	rootCmd.Flags().StringP("output", "o", "", "Output filename (default: {video_id}.jpg in download mode, or stdout in batch mode)")

	rootCmd.Flags().StringP("parser", "p", "", "How the watch page is scraped in batch mode (regex, goquery)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("parser", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return youtube.ScraperNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.MetadataParser, rootCmd.Flags().Lookup("parser")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., plain, emoji, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd extracts thumbnails for one URL or a file of URLs.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Extract and download YouTube video thumbnails",
	Long: `Extract and download YouTube video thumbnails.

Supported URL formats:
  - ` + strings.Join(youtube.SupportedFormats, "\n  - "),
	Example: `  Single URL mode:
    ytthumbs https://www.youtube.com/watch?v=dQw4w9WgXcQ
    ytthumbs https://youtu.be/dQw4w9WgXcQ --download
    ytthumbs https://youtu.be/dQw4w9WgXcQ --download --output my_thumb.jpg

  Batch mode:
    ytthumbs --batch urls.txt
    ytthumbs --batch urls.txt --output results.md`,
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			return
		}

		handleUsageErr(cmd, validateMode(
			lo.FirstOr(args, ""),
			lo.Must(cmd.Flags().GetString("batch")),
			lo.Must(cmd.Flags().GetBool("download")),
		))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		client, err := youtube.FromConfig()
		handleErr(err)

		var (
			batchFile = lo.Must(cmd.Flags().GetString("batch"))
			output    = lo.Must(cmd.Flags().GetString("output"))
		)

		if batchFile != "" {
			log.Infof("batch run over %s", batchFile)
			_, err := batch.Run(cmd.Context(), &batch.Options{
				Input:            batchFile,
				Output:           output,
				Source:           client,
				DescriptionLimit: viper.GetInt(key.BatchDescriptionLimit),
				Out:              os.Stdout,
				Err:              os.Stderr,
			})
			handleErr(err)
			return
		}

		log.Infof("single run for %s", args[0])
		handleErr(single.Run(cmd.Context(), &single.Options{
			URL:        args[0],
			Download:   lo.Must(cmd.Flags().GetBool("download")),
			Output:     output,
			Downloader: client,
			Out:        os.Stdout,
		}))
	},
}

// validateMode rejects flag combinations before any work starts.
func validateMode(url, batchFile string, download bool) error {
	switch {
	case batchFile != "" && url != "":
		return errBothModes
	case batchFile == "" && url == "":
		return errNoMode
	case batchFile != "" && download:
		return errDownloadInBatch
	default:
		return nil
	}
}

// Execute initializes child command routing and processes the CLI entry point.
// SIGINT and SIGTERM cancel the context handed to commands.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintln(os.Stderr, icon.Prefix(icon.Fail, strings.Trim(err.Error(), " \n")))
		os.Exit(1)
	}
}

func handleUsageErr(cmd *cobra.Command, err error) {
	if err != nil {
		log.Error(err)
		cmd.PrintErrln(cmd.ErrPrefix(), err.Error())
		cmd.PrintErrf("Run '%s --help' for usage.\n", cmd.CommandPath())
		os.Exit(1)
	}
}
