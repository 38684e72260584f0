package review

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hunkbot/hunkbot/internal/diff"
	"github.com/hunkbot/hunkbot/internal/llm"
)

// fakeCompleter returns canned responses in call order.
type fakeCompleter struct {
	responses []string
	calls     int
	prompts   []string
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.prompts = append(f.prompts, req.User)
	resp := ""
	if f.calls < len(f.responses) {
		resp = f.responses[f.calls]
	}
	f.calls++
	return resp, nil
}

const engineDiff = `diff --git a/a.py b/a.py
index 1111111..2222222 100644
--- a/a.py
+++ b/a.py
@@ -3,3 +3,4 @@
 import math
 
+x = 1/0
 print(x)
diff --git a/b.go b/b.go
index 3333333..4444444 100644
--- a/b.go
+++ b/b.go
@@ -1,2 +1,3 @@
 package b
+
 var B int
`

func parseFiles(t *testing.T, raw string) []*diff.File {
	t.Helper()
	s, err := diff.Parse(raw)
	if err != nil {
		t.Fatalf("parsing test diff: %v", err)
	}
	return s.Files
}

var testPR = ChangeContext{Owner: "acme", Repo: "widgets", Number: 7, Title: "t", Description: "d"}

func TestReviewProducesComments(t *testing.T) {
	files := parseFiles(t, engineDiff)
	completer := &fakeCompleter{responses: []string{
		`{"reviews":[{"lineNumber":"5","reviewComment":"Divisão por zero possível."}]}`,
		`{"reviews":[]}`,
	}}

	got := NewEngine(completer, "Portuguese", nil).Review(context.Background(), testPR, files)

	want := []Comment{{Path: "a.py", Line: 5, Body: "Divisão por zero possível."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	if completer.calls != 2 {
		t.Errorf("expected one model call per hunk, got %d", completer.calls)
	}
}

func TestReviewSkipsDeletedFiles(t *testing.T) {
	const deletedDiff = `diff --git a/b.py b/b.py
deleted file mode 100644
index 3333333..0000000
--- a/b.py
+++ /dev/null
@@ -1,2 +0,0 @@
-gone
-for good
`
	files := parseFiles(t, deletedDiff)
	completer := &fakeCompleter{}

	got := NewEngine(completer, "English", nil).Review(context.Background(), testPR, files)

	if completer.calls != 0 {
		t.Errorf("deleted file must never reach the model, got %d calls", completer.calls)
	}
	if len(got) != 0 {
		t.Errorf("expected no comments, got %+v", got)
	}
}

func TestReviewRecoversFromMalformedResponse(t *testing.T) {
	files := parseFiles(t, engineDiff)
	completer := &fakeCompleter{responses: []string{
		"I see nothing wrong here, great work!",
		`{"reviews":[{"lineNumber":2,"reviewComment":"stray blank line"}]}`,
	}}

	got := NewEngine(completer, "English", nil).Review(context.Background(), testPR, files)

	want := []Comment{{Path: "b.go", Line: 2, Body: "stray blank line"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	if completer.calls != 2 {
		t.Errorf("a malformed response must not abort the run, got %d calls", completer.calls)
	}
}

func TestReviewDropsOutOfRangeFindings(t *testing.T) {
	files := parseFiles(t, engineDiff)
	completer := &fakeCompleter{responses: []string{
		`{"reviews":[{"lineNumber":999,"reviewComment":"hallucinated"},{"lineNumber":5,"reviewComment":"real"}]}`,
		`{"reviews":[]}`,
	}}

	got := NewEngine(completer, "English", nil).Review(context.Background(), testPR, files)

	want := []Comment{{Path: "a.py", Line: 5, Body: "real"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
}

func TestReviewOrdering(t *testing.T) {
	files := parseFiles(t, engineDiff)
	completer := &fakeCompleter{responses: []string{
		`{"reviews":[{"lineNumber":3,"reviewComment":"first file"}]}`,
		`{"reviews":[{"lineNumber":1,"reviewComment":"second file"}]}`,
	}}

	got := NewEngine(completer, "English", nil).Review(context.Background(), testPR, files)

	want := []Comment{
		{Path: "a.py", Line: 3, Body: "first file"},
		{Path: "b.go", Line: 1, Body: "second file"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comments out of order (-want +got):\n%s", diff)
	}
}
