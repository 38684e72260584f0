package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v72/github"

	"github.com/hunkbot/hunkbot/internal/review"
)

// newTestClient returns a Client talking to a local test server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	c.BaseURL = base
	return &Client{gh: c}
}

func TestChangeContext(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"number": 7, "title": "Add checks", "body": "Validates input."}`)
	})

	c := newTestClient(t, mux)
	pr, err := c.ChangeContext(context.Background(), "acme", "widgets", 7)
	if err != nil {
		t.Fatalf("ChangeContext failed: %v", err)
	}

	want := review.ChangeContext{Owner: "acme", Repo: "widgets", Number: 7, Title: "Add checks", Description: "Validates input."}
	if pr != want {
		t.Errorf("expected %+v, got %+v", want, pr)
	}
}

func TestDiff(t *testing.T) {
	const rawDiff = "diff --git a/a.py b/a.py\n"

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/7", func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/vnd.github.v3.diff" {
			t.Errorf("unexpected Accept header %q", accept)
		}
		fmt.Fprint(w, rawDiff)
	})

	c := newTestClient(t, mux)
	got, err := c.Diff(context.Background(), "acme", "widgets", 7)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if got != rawDiff {
		t.Errorf("expected %q, got %q", rawDiff, got)
	}
}

func TestCompareDiff(t *testing.T) {
	const rawDiff = "diff --git a/b.go b/b.go\n"

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/compare/abc...def", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rawDiff)
	})

	c := newTestClient(t, mux)
	got, err := c.CompareDiff(context.Background(), "acme", "widgets", "abc", "def")
	if err != nil {
		t.Fatalf("CompareDiff failed: %v", err)
	}
	if got != rawDiff {
		t.Errorf("expected %q, got %q", rawDiff, got)
	}
}

func TestCreateReview(t *testing.T) {
	var body struct {
		Event    string `json:"event"`
		Comments []struct {
			Path string `json:"path"`
			Line int    `json:"line"`
			Body string `json:"body"`
		} `json:"comments"`
	}
	posted := false

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		posted = true
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(data, &body); err != nil {
			t.Fatalf("unmarshaling review request: %v", err)
		}
		fmt.Fprint(w, `{"id": 1}`)
	})

	c := newTestClient(t, mux)
	pr := review.ChangeContext{Owner: "acme", Repo: "widgets", Number: 7}
	comments := []review.Comment{
		{Path: "a.py", Line: 5, Body: "Divisão por zero possível."},
		{Path: "b.go", Line: 2, Body: "unchecked error"},
	}

	if err := c.CreateReview(context.Background(), pr, comments); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	if !posted {
		t.Fatal("review was not posted")
	}
	if body.Event != "COMMENT" {
		t.Errorf("expected COMMENT event, got %q", body.Event)
	}
	if len(body.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(body.Comments))
	}
	if body.Comments[0].Path != "a.py" || body.Comments[0].Line != 5 {
		t.Errorf("unexpected first comment %+v", body.Comments[0])
	}
}

func TestCreateReviewEmptyBatch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request for empty batch: %s %s", r.Method, r.URL.Path)
	}))

	if err := c.CreateReview(context.Background(), review.ChangeContext{Owner: "a", Repo: "b", Number: 1}, nil); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
}
