// Package handler
package handler

import (
	"context"
	"errors"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/nns"
	"github.com/icpkit/nns-proposals-backend/types"
)

// Proposals runs the list-then-detail pipeline:
//
//  1. translate the topic filter into the ledger's exclusion dialect and the
//     status filter into a single-element inclusion list
//  2. list proposals
//  3. fetch detail per handle (bounded pool, list order restored)
//  4. re-check both filters against the resolved detail
//  5. project survivors in list order
//
// Any transport failure aborts the whole query, no partial results.
func (h *handler) Proposals(ctx context.Context, req *types.ProposalsRequest) (*types.ProposalsResult, error) {
	if req == nil {
		req = types.DefaultProposalsRequest()
	}
	listReq := nns.ListRequest{
		Limit:        req.Limit,
		ExcludeTopic: excludeTopics(req.Topic),
	}
	if req.Status != nil {
		listReq.IncludeStatus = []int32{*req.Status}
	}

	handles, err := h.client.ListProposals(ctx, listReq)
	if err != nil {
		return nil, err
	}

	details, err := h.fetchDetails(ctx, handles)
	if err != nil {
		return nil, err
	}

	summaries := make([]*types.ProposalSummary, 0, len(details))
	for i, detail := range details {
		if detail == nil {
			// Listed but gone by detail-fetch time, skip.
			continue
		}
		if !req.Matches(detail) {
			continue
		}
		summaries = append(summaries, project(handles[i], detail))
	}
	h.logger.Debug("Proposals query done",
		zap.Int("listed", len(handles)),
		zap.Int("returned", len(summaries)))
	return &types.ProposalsResult{Proposals: summaries}, nil
}

// ProposalInfo fetches and projects a single proposal.
func (h *handler) ProposalInfo(ctx context.Context, proposalID uint64) (*types.ProposalSummary, error) {
	detail, err := h.client.GetProposalInfo(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return project(&types.ProposalHandle{ID: detail.ID}, detail), nil
}

// excludeTopics inverts an include-one topic filter into the exclusion set
// the ledger understands: every registered code except the requested one.
func excludeTopics(topic *int32) []int32 {
	if topic == nil {
		return nil
	}
	all := types.TopicCodes()
	excluded := make([]int32, 0, len(all))
	for _, code := range all {
		if code != *topic {
			excluded = append(excluded, code)
		}
	}
	return excluded
}

// fetchDetails resolves detail for every handle through a bounded worker
// pool. details[i] corresponds to handles[i]; a nil slot means the detail
// lookup returned empty for that id. The first transport failure wins and
// fails the whole batch.
func (h *handler) fetchDetails(ctx context.Context, handles []*types.ProposalHandle) ([]*types.ProposalDetail, error) {
	details := make([]*types.ProposalDetail, len(handles))
	if len(handles) == 0 {
		return details, nil
	}

	type fetchInput struct {
		idx int
		id  uint64
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	p, err := ants.NewPoolWithFunc(h.workers, func(i interface{}) {
		defer wg.Done()
		input := i.(fetchInput)

		mu.Lock()
		aborted := firstErr != nil
		mu.Unlock()
		if aborted {
			return
		}

		detail, err := h.client.GetProposalInfo(ctx, input.id)
		if err != nil {
			if errors.Is(err, types.ErrProposalNotFound) {
				h.logger.Debug("Proposal listed but detail missing", zap.Uint64("id", input.id))
				return
			}
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		details[input.idx] = detail
	})
	if err != nil {
		return nil, err
	}
	defer p.Release()

	for idx, handle := range handles {
		wg.Add(1)
		if err := p.Invoke(fetchInput{idx: idx, id: handle.ID}); err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return details, nil
}
