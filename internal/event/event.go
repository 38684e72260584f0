// Package event loads and routes the trigger payload a GitHub Actions run
// is invoked with.
package event

import (
	"encoding/json"
	"fmt"
	"os"
)

// Actions that trigger a review. Anything else is ignored.
const (
	ActionOpened      = "opened"
	ActionSynchronize = "synchronize"
)

// Event is the subset of the pull_request webhook payload the pipeline
// needs. On synchronize, Before and After identify the newly pushed range.
type Event struct {
	Action string `json:"action"`
	Before string `json:"before"`
	After  string `json:"after"`
	Number int    `json:"number"`

	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`

	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

// Load reads the event payload from path, normally $GITHUB_EVENT_PATH.
func Load(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("parsing event payload: %w", err)
	}
	return &ev, nil
}

// Supported reports whether the action kind triggers a review.
func (e *Event) Supported() bool {
	return e.Action == ActionOpened || e.Action == ActionSynchronize
}

// Owner returns the repository owner login.
func (e *Event) Owner() string {
	return e.Repository.Owner.Login
}

// Repo returns the repository name.
func (e *Event) Repo() string {
	return e.Repository.Name
}

// PRNumber returns the pull request number, preferring the nested
// pull_request object over the top-level field.
func (e *Event) PRNumber() int {
	if e.PullRequest.Number != 0 {
		return e.PullRequest.Number
	}
	return e.Number
}
