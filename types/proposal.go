// Package types
package types

// ProposalHandle is the minimal identifying data returned by the governance
// list operation. Topic and status are not part of the handle, the detail
// fetch is the authoritative source for both.
type ProposalHandle struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ProposalDetail is the full record returned by the per-id fetch.
type ProposalDetail struct {
	ID               uint64 `json:"id"`
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	Topic            int32  `json:"topic"`
	Status           int32  `json:"status"`
	TimestampSeconds uint64 `json:"timestampSeconds"`
}

// ProposalSummary is the externally visible unit. The numeric topic/status
// codes are kept next to the resolved names so callers can filter without
// reverse-parsing display strings.
type ProposalSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	Topic            string `json:"topic"`
	TopicCode        int32  `json:"topicCode"`
	Status           string `json:"status"`
	StatusCode       int32  `json:"statusCode"`
	TimestampSeconds uint64 `json:"timestamp"`
}

type ProposalsResult struct {
	Proposals []*ProposalSummary `json:"proposals"`
}
