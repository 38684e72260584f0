// Package review turns structured diff hunks into line-anchored review
// comments by prompting a language model once per hunk.
package review

// ChangeContext identifies the pull request under review. It is fetched
// once and threaded read-only through the pipeline.
type ChangeContext struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Description string
}

// Finding is a candidate comment proposed by the model for one hunk. It is
// not yet anchored to a file path.
type Finding struct {
	Line int
	Body string
}

// Comment is a finding resolved to a concrete file path, ready for
// publication.
type Comment struct {
	Path string
	Line int
	Body string
}
