package types

const (
	DefaultProposalLimit = 10
)

// ProposalsRequest constrains a single proposals query. Topic and Status are
// independent, a request carrying both keeps only proposals satisfying both.
// Limit 0 is passed through to the ledger verbatim, the engine never clamps
// an explicit value.
type ProposalsRequest struct {
	Limit  uint32 `json:"limit"`
	Topic  *int32 `json:"topic,omitempty"`
	Status *int32 `json:"status,omitempty"`
}

func DefaultProposalsRequest() *ProposalsRequest {
	return &ProposalsRequest{Limit: DefaultProposalLimit}
}

// Matches reports whether a resolved detail satisfies the request filters.
func (r *ProposalsRequest) Matches(detail *ProposalDetail) bool {
	if r.Topic != nil && detail.Topic != *r.Topic {
		return false
	}
	if r.Status != nil && detail.Status != *r.Status {
		return false
	}
	return true
}
