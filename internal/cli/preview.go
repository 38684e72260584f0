package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hunkbot/hunkbot/internal/diff"
	"github.com/hunkbot/hunkbot/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [diff-file]",
	Short: "Render a diff the way the reviewer sees it",
	Long: `Parse a unified diff and render its files and hunks with the line numbers
the review prompts carry. Reads from stdin when no file is given. Useful
for checking exclusion patterns without credentials or model calls.

Examples:
  git diff main...HEAD | hunkbot preview
  hunkbot preview changes.patch --exclude "*.md,vendor/**"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("exclude", "e", "", "comma-separated glob patterns to exclude")
	previewCmd.Flags().Bool("stat", false, "print per-file change counts and exit")
}

func runPreview(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading diff: %w", err)
	}

	set, err := diff.Parse(string(data))
	if err != nil {
		return err
	}

	exclude, _ := cmd.Flags().GetString("exclude")
	files := diff.Exclude(set.Files, diff.ParsePatterns(exclude))

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "No files to review.")
		return nil
	}

	if stat, _ := cmd.Flags().GetBool("stat"); stat {
		return printStat(out, files)
	}

	for _, f := range files {
		fmt.Fprintln(out, render.File(f))
	}
	return nil
}

func printStat(out io.Writer, files []*diff.File) error {
	var added, deleted int
	for _, f := range files {
		added += f.AddedLines
		deleted += f.DeletedLines
	}
	fmt.Fprintf(out, "%d file(s) changed, %d insertions(+), %d deletions(-)\n\n", len(files), added, deleted)

	for _, f := range files {
		status := "M"
		if f.IsNew {
			status = "A"
		} else if f.IsDeleted {
			status = "D"
		} else if f.IsRenamed {
			status = "R"
		}
		fmt.Fprintf(out, "  %s %-50s +%-4d -%d\n", status, f.Name(), f.AddedLines, f.DeletedLines)
	}
	return nil
}
