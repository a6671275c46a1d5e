package jira

// Issue is the subset of the tracker's issue JSON this tool reads.
type Issue struct {
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the requested issue fields.
type IssueFields struct {
	IssueLinks []IssueLink `json:"issuelinks"`
}

// IssueLink carries its direction structurally: the tracker sets exactly one
// of InwardIssue or OutwardIssue on each link object.
type IssueLink struct {
	InwardIssue  *LinkedIssue `json:"inwardIssue,omitempty"`
	OutwardIssue *LinkedIssue `json:"outwardIssue,omitempty"`
}

// LinkedIssue is the far end of an issue link.
type LinkedIssue struct {
	Key string `json:"key"`
}

// Project returns the linked issue's project prefix (the part of the key
// before the first hyphen).
func (l *LinkedIssue) Project() string {
	for i := 0; i < len(l.Key); i++ {
		if l.Key[i] == '-' {
			return l.Key[:i]
		}
	}
	return l.Key
}
