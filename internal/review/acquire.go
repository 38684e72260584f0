package review

import (
	"context"

	"github.com/hunkbot/hunkbot/internal/event"
)

// DiffSource supplies raw unified diffs for a change set.
type DiffSource interface {
	Diff(ctx context.Context, owner, repo string, number int) (string, error)
	CompareDiff(ctx context.Context, owner, repo, base, head string) (string, error)
}

// AcquireDiff selects the diff strategy for the triggering event: the full
// pull-request diff when it was just opened, or only the newly pushed
// before...after delta on synchronize, so already-reviewed lines are not
// re-surfaced on every push. Unsupported actions yield an empty diff and
// no error.
func AcquireDiff(ctx context.Context, src DiffSource, ev *event.Event) (string, error) {
	switch ev.Action {
	case event.ActionOpened:
		return src.Diff(ctx, ev.Owner(), ev.Repo(), ev.PRNumber())
	case event.ActionSynchronize:
		return src.CompareDiff(ctx, ev.Owner(), ev.Repo(), ev.Before, ev.After)
	default:
		return "", nil
	}
}
