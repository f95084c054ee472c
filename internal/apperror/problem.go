package apperror

import "fmt"

// ProblemContentType is the media type of problem documents.
const ProblemContentType = "application/problem+json"

// Problem is the structured error document returned to clients.
type Problem struct {
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Status    int            `json:"status"`
	Detail    string         `json:"detail,omitempty"`
	Instance  string         `json:"instance"`
	Code      string         `json:"code"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Exception string         `json:"exception,omitempty"`
}

// TypeURI returns the deterministic type identifier for a status.
func TypeURI(status int) string {
	return fmt.Sprintf("https://www.rfc-editor.org/rfc/rfc9110#status.%d", status)
}

// NewProblem builds the document for a classified error raised while
// serving path.
func NewProblem(c Classification, err error, path string) Problem {
	p := Problem{
		Type:     TypeURI(c.Status),
		Title:    c.Title,
		Status:   c.Status,
		Detail:   c.Detail,
		Instance: path,
		Code:     c.Code,
		Context:  c.Fields,
	}
	if c.Disclose && err != nil {
		p.Exception = err.Error()
	}
	return p
}
