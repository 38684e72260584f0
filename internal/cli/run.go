package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hunkbot/hunkbot/internal/config"
	"github.com/hunkbot/hunkbot/internal/diff"
	"github.com/hunkbot/hunkbot/internal/event"
	"github.com/hunkbot/hunkbot/internal/github"
	"github.com/hunkbot/hunkbot/internal/llm"
	"github.com/hunkbot/hunkbot/internal/render"
	"github.com/hunkbot/hunkbot/internal/review"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Review the pull request for the triggering event",
	Long: `Run the review pipeline for the GitHub Actions event that invoked the
process: fetch the diff, review each hunk with the model, and publish the
findings as a single review.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "render the review locally instead of publishing")
}

func runRun(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ev, err := event.Load(cfg.EventPath)
	if err != nil {
		return err
	}
	if !ev.Supported() {
		log.Info("unsupported event action, nothing to review", "action", ev.Action)
		return nil
	}

	host := github.NewClient(cfg.GitHubToken)

	pr, err := host.ChangeContext(ctx, ev.Owner(), ev.Repo(), ev.PRNumber())
	if err != nil {
		return err
	}

	raw, err := review.AcquireDiff(ctx, host, ev)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		log.Info("no diff returned, nothing to review", "pr", pr.Number)
		return nil
	}

	set, err := diff.Parse(raw)
	if err != nil {
		return err
	}

	files := diff.Exclude(set.Files, diff.ParsePatterns(cfg.Exclude))
	log.Info("reviewing", "pr", pr.Number, "files", len(files), "excluded", len(set.Files)-len(files))

	engine := review.NewEngine(llm.NewOpenAI(cfg.OpenAIKey, cfg.Model), cfg.Language, log)
	comments := engine.Review(ctx, pr, files)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprint(cmd.OutOrStdout(), render.Comments(comments))
		return nil
	}

	if len(comments) == 0 {
		log.Info("no findings to publish", "pr", pr.Number)
		return nil
	}
	if err := host.CreateReview(ctx, pr, comments); err != nil {
		return err
	}
	log.Info("review published", "pr", pr.Number, "comments", len(comments))
	return nil
}
