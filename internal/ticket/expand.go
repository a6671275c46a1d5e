package ticket

import (
	"context"

	"github.com/relengtools/trackdown/internal/jira"
)

// IssueSource is the slice of the tracker session that link expansion needs.
type IssueSource interface {
	Issue(ctx context.Context, key string) (*jira.Issue, error)
}

// Expand resolves each source key through the tracker and collects the keys
// of its inward-linked issues, filtered to the targetProject prefix when
// non-empty. Results across all source keys are unioned into one
// deduplicated set, ordered by first appearance.
//
// Expansion is exactly one hop: linked issues are never themselves expanded.
// A source issue with no matching links contributes nothing. A source key
// the tracker does not know fails the whole expansion; there is no
// partial-success mode.
func Expand(ctx context.Context, src IssueSource, sourceKeys []Key, targetProject string) (*Set, error) {
	targets := NewSet()
	for _, key := range sourceKeys {
		issue, err := src.Issue(ctx, string(key))
		if err != nil {
			return nil, err
		}
		for _, link := range issue.Fields.IssueLinks {
			// Only inward links point at tickets the source depends on.
			if link.InwardIssue == nil {
				continue
			}
			linked := Key(link.InwardIssue.Key)
			if targetProject != "" && linked.Project() != targetProject {
				continue
			}
			targets.Add(linked)
		}
	}
	return targets, nil
}
