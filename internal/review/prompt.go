package review

import (
	"fmt"
	"strings"

	"github.com/hunkbot/hunkbot/internal/diff"
)

// responseFormat is the contract every model response must honor: a single
// JSON object whose only key is the findings array.
const responseFormat = `{"reviews": [{"lineNumber": <line_number>, "reviewComment": "<review comment>"}]}`

// systemPrompt restates the format and language contract. The instruction
// prompt alone is not always enough to hold a model to it.
func systemPrompt(language string) string {
	return fmt.Sprintf("You are a strict code reviewer. Respond only with a single JSON object in the format %s, with an empty array when there is nothing to flag. Write every review comment in %s.", responseFormat, language)
}

// buildPrompt constructs the per-hunk instruction. The pull request title
// and description are context only; the hunk is embedded with the resolved
// line number in front of every change line.
func buildPrompt(pr ChangeContext, path string, h *diff.Hunk, language string) string {
	var b strings.Builder

	b.WriteString("Your task is to review pull requests. Instructions:\n")
	fmt.Fprintf(&b, "- Respond in the following JSON format: %s\n", responseFormat)
	b.WriteString("- Provide comments and suggestions ONLY if there is something to improve, otherwise \"reviews\" should be an empty array.\n")
	b.WriteString("- Do not give positive comments or compliments.\n")
	fmt.Fprintf(&b, "- Write the comment in GitHub Markdown format, in %s.\n", language)
	b.WriteString("- Use the pull request title and description only for overall context and comment only on the code.\n")
	b.WriteString("- IMPORTANT: NEVER suggest adding comments to the code.\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Review the following code diff in the file %q, taking the pull request title and description into account.\n", path)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Pull request title: %s\n", pr.Title)
	fmt.Fprintf(&b, "Pull request description:\n\n---\n%s\n---\n", pr.Description)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Git diff to review:\n\n```diff\n%s\n```\n", h.NumberedText())

	return b.String()
}
