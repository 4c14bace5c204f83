package cmd

import (
	"errors"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytthumbs/ytthumbs/util"
	"github.com/ytthumbs/ytthumbs/where"
)

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("logs", "l", false, "Clear written log files")
}

// clearCmd removes files the application accumulated.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove accumulated application files",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("logs")) {
			handleErr(cmd.Help())
			return
		}

		err := util.Delete(where.Logs())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			handleErr(err)
		}
		success("Logs cleared")
	},
}
