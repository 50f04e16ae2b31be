// Package nns
package nns

// Trimmed views of the governance candid records, only the fields this
// backend reads are declared. Field names follow governance.did.

type proposalID struct {
	ID uint64 `ic:"id"`
}

type proposalData struct {
	Title   *string `ic:"title,omitempty"`
	URL     string  `ic:"url"`
	Summary string  `ic:"summary"`
}

type proposalInfo struct {
	ID                       *proposalID   `ic:"id,omitempty"`
	Status                   int32         `ic:"status"`
	Topic                    int32         `ic:"topic"`
	ProposalTimestampSeconds uint64        `ic:"proposal_timestamp_seconds"`
	Proposal                 *proposalData `ic:"proposal,omitempty"`
}

type listProposalInfo struct {
	IncludeRewardStatus []int32     `ic:"include_reward_status"`
	BeforeProposal      *proposalID `ic:"before_proposal,omitempty"`
	Limit               uint32      `ic:"limit"`
	ExcludeTopic        []int32     `ic:"exclude_topic"`
	IncludeStatus       []int32     `ic:"include_status"`
}

type listProposalInfoResponse struct {
	ProposalInfo []proposalInfo `ic:"proposal_info"`
}
