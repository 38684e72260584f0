// Package cli implements the hunkbot command surface.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hunkbot",
	Short: "AI reviewer for pull requests",
	Long: `Hunkbot reviews pull request diffs hunk by hunk with a language model
and posts the findings back as inline review comments.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
