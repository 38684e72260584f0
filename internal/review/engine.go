package review

import (
	"context"
	"log/slog"

	"github.com/hunkbot/hunkbot/internal/diff"
	"github.com/hunkbot/hunkbot/internal/llm"
)

// Engine runs the per-hunk review loop against a model.
type Engine struct {
	completer llm.Completer
	language  string
	log       *slog.Logger
}

// NewEngine creates an Engine. language is the language review comments
// are written in.
func NewEngine(completer llm.Completer, language string, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{completer: completer, language: language, log: log}
}

// Review asks the model about every hunk of every reviewable file and
// returns the comments in file/hunk encounter order. Model calls are
// strictly sequential. A hunk whose call fails or whose response cannot be
// decoded contributes nothing; the loop continues with the rest.
func (e *Engine) Review(ctx context.Context, pr ChangeContext, files []*diff.File) []Comment {
	var comments []Comment

	for _, f := range files {
		path, ok := f.TargetPath()
		if !ok {
			e.log.Info("skipping deleted file", "file", f.Name())
			continue
		}
		if path == "" {
			continue
		}

		for i, h := range f.Hunks {
			req := llm.Request{
				System: systemPrompt(e.language),
				User:   buildPrompt(pr, path, h, e.language),
			}

			resp, err := e.completer.Complete(ctx, req)
			if err != nil {
				e.log.Warn("model call failed", "file", path, "hunk", i+1, "err", err)
				continue
			}

			findings, err := DecodeFindings(resp)
			if err != nil {
				e.log.Warn("undecodable model response", "file", path, "hunk", i+1, "err", err)
				continue
			}

			for _, fd := range findings {
				// An out-of-range line would be rejected by the hosting API
				// at publish time and fail the whole batch.
				if !h.CoversNewLine(fd.Line) {
					e.log.Warn("dropping finding outside hunk range", "file", path, "hunk", i+1, "line", fd.Line)
					continue
				}
				comments = append(comments, Comment{Path: path, Line: fd.Line, Body: fd.Body})
			}
		}
	}

	return comments
}
