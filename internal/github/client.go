// Package github wraps the hosting API used to fetch and annotate pull
// requests.
package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v72/github"

	"github.com/hunkbot/hunkbot/internal/review"
)

// Client provides the pull-request operations the pipeline needs. It is
// constructed once at startup and reused for every call within the run.
type Client struct {
	gh *gh.Client
}

// NewClient returns a Client authenticated with token.
func NewClient(token string) *Client {
	return &Client{gh: gh.NewClient(nil).WithAuthToken(token)}
}

// ChangeContext fetches pull-request metadata.
func (c *Client) ChangeContext(ctx context.Context, owner, repo string, number int) (review.ChangeContext, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return review.ChangeContext{}, fmt.Errorf("fetching pull request: %w", err)
	}
	return review.ChangeContext{
		Owner:       owner,
		Repo:        repo,
		Number:      number,
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
	}, nil
}

// Diff fetches the full diff of a pull request as currently presented.
func (c *Client) Diff(ctx context.Context, owner, repo string, number int) (string, error) {
	raw, _, err := c.gh.PullRequests.GetRaw(ctx, owner, repo, number, gh.RawOptions{Type: gh.Diff})
	if err != nil {
		return "", fmt.Errorf("fetching pull request diff: %w", err)
	}
	return raw, nil
}

// CompareDiff fetches the diff restricted to the base...head commit range.
func (c *Client) CompareDiff(ctx context.Context, owner, repo, base, head string) (string, error) {
	raw, _, err := c.gh.Repositories.CompareCommitsRaw(ctx, owner, repo, base, head, gh.RawOptions{Type: gh.Diff})
	if err != nil {
		return "", fmt.Errorf("comparing commits %s...%s: %w", base, head, err)
	}
	return raw, nil
}

// CreateReview publishes the comment batch as a single neutral review. The
// review never approves or requests changes. An empty batch creates no
// review at all.
func (c *Client) CreateReview(ctx context.Context, pr review.ChangeContext, comments []review.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	draft := make([]*gh.DraftReviewComment, len(comments))
	for i, cm := range comments {
		draft[i] = &gh.DraftReviewComment{
			Path: gh.Ptr(cm.Path),
			Line: gh.Ptr(cm.Line),
			Body: gh.Ptr(cm.Body),
		}
	}

	req := &gh.PullRequestReviewRequest{
		Event:    gh.Ptr("COMMENT"),
		Comments: draft,
	}
	if _, _, err := c.gh.PullRequests.CreateReview(ctx, pr.Owner, pr.Repo, pr.Number, req); err != nil {
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}
