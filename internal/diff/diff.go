// Package diff parses unified diffs into structured, line-numbered hunks.
package diff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// Line is a single diff line with its resolved positions. A zero OldNum or
// NewNum means the line does not exist on that side of the change.
type Line struct {
	Op     gitdiff.LineOp
	OldNum int
	NewNum int
	Text   string // literal content without the trailing newline
}

// Num returns the line number used to annotate the line for review: the
// new-file number when the line exists there, else the old-file number.
func (l Line) Num() int {
	if l.NewNum > 0 {
		return l.NewNum
	}
	return l.OldNum
}

// Hunk is one contiguous change block within a file.
type Hunk struct {
	Header string
	Lines  []Line
}

// NumberedText renders the hunk as its header followed by one annotated
// line per change, preserving the original ordering.
func (h *Hunk) NumberedText() string {
	var b strings.Builder
	b.WriteString(h.Header)
	for _, line := range h.Lines {
		fmt.Fprintf(&b, "\n%d %s", line.Num(), line.Text)
	}
	return b.String()
}

// CoversNewLine reports whether line number n exists in the new file within
// this hunk. Comments anchor to new-file lines, so this is the range a
// reviewer may legally reference.
func (h *Hunk) CoversNewLine(n int) bool {
	for _, line := range h.Lines {
		if line.NewNum == n {
			return true
		}
	}
	return false
}

// File represents a single file in a diff with its parsed hunks.
type File struct {
	OldName      string
	NewName      string
	IsNew        bool
	IsDeleted    bool
	IsRenamed    bool
	IsBinary     bool
	Hunks        []*Hunk
	AddedLines   int
	DeletedLines int
}

// TargetPath returns the path review comments anchor to. ok is false for
// deleted files, which have no meaningful new-file lines to comment on.
func (f *File) TargetPath() (path string, ok bool) {
	if f.IsDeleted {
		return "", false
	}
	if f.NewName != "" {
		return f.NewName, true
	}
	return f.OldName, true
}

// Name returns the display name for the file.
func (f *File) Name() string {
	if f.IsRenamed {
		return fmt.Sprintf("%s → %s", f.OldName, f.NewName)
	}
	if f.IsNew {
		return f.NewName
	}
	if f.IsDeleted {
		return f.OldName
	}
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}

// Set holds the parsed diff for all files, in the order they appeared.
type Set struct {
	Files []*File
	Raw   string // the raw unified diff text
}

// Stats returns aggregate statistics.
func (s *Set) Stats() (files, added, deleted int) {
	files = len(s.Files)
	for _, f := range s.Files {
		added += f.AddedLines
		deleted += f.DeletedLines
	}
	return
}

// Parse reads a unified diff string and returns a Set. Binary files produce
// a File with no hunks.
func Parse(raw string) (*Set, error) {
	parsed, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	s := &Set{Raw: raw}
	for _, f := range parsed {
		df := &File{
			OldName:   f.OldName,
			NewName:   f.NewName,
			IsNew:     f.IsNew,
			IsDeleted: f.IsDelete,
			IsRenamed: f.IsRename,
			IsBinary:  f.IsBinary,
		}

		for _, frag := range f.TextFragments {
			h := buildHunk(frag)
			df.Hunks = append(df.Hunks, h)
			for _, line := range h.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					df.AddedLines++
				case gitdiff.OpDelete:
					df.DeletedLines++
				}
			}
		}

		s.Files = append(s.Files, df)
	}

	return s, nil
}

// buildHunk resolves old/new line numbers for every line of a fragment.
func buildHunk(frag *gitdiff.TextFragment) *Hunk {
	h := &Hunk{Header: formatHunkHeader(frag)}

	oldLine := int(frag.OldPosition)
	newLine := int(frag.NewPosition)

	for _, line := range frag.Lines {
		l := Line{
			Op:   line.Op,
			Text: strings.TrimRight(line.Line, "\n\r"),
		}

		switch line.Op {
		case gitdiff.OpContext:
			l.OldNum = oldLine
			l.NewNum = newLine
			oldLine++
			newLine++
		case gitdiff.OpDelete:
			l.OldNum = oldLine
			oldLine++
		case gitdiff.OpAdd:
			l.NewNum = newLine
			newLine++
		}

		h.Lines = append(h.Lines, l)
	}

	return h
}

func formatHunkHeader(frag *gitdiff.TextFragment) string {
	old := fmt.Sprintf("-%d", frag.OldPosition)
	if frag.OldLines != 1 {
		old += fmt.Sprintf(",%d", frag.OldLines)
	}
	new := fmt.Sprintf("+%d", frag.NewPosition)
	if frag.NewLines != 1 {
		new += fmt.Sprintf(",%d", frag.NewLines)
	}

	header := fmt.Sprintf("@@ %s %s @@", old, new)
	if frag.Comment != "" {
		header += " " + frag.Comment
	}
	return header
}
