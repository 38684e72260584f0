package review

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The model's output is untrusted text that should contain JSON. Decoding
// has a narrow contract: raw text in, findings or an error out. Callers
// treat any error as "no findings for this hunk".

type rawResponse struct {
	Reviews []rawReview `json:"reviews"`
}

type rawReview struct {
	LineNumber    flexInt `json:"lineNumber"`
	ReviewComment string  `json:"reviewComment"`
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("line number %q: %w", s, err)
	}
	*n = flexInt(v)
	return nil
}

// DecodeFindings extracts findings from a raw model response. The response
// may be wrapped in code fences or surrounded by prose; everything outside
// the first and last brace is discarded before parsing.
func DecodeFindings(raw string) ([]Finding, error) {
	s := stripFences(raw)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var resp rawResponse
	if err := json.Unmarshal([]byte(s[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}
	if resp.Reviews == nil {
		return nil, fmt.Errorf("response has no reviews field")
	}

	findings := make([]Finding, 0, len(resp.Reviews))
	for _, r := range resp.Reviews {
		findings = append(findings, Finding{Line: int(r.LineNumber), Body: r.ReviewComment})
	}
	return findings, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}
