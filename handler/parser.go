// Package handler
package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/icpkit/nns-proposals-backend/types"
)

const commandName = "!proposals"

// ParseCommand turns a raw chat command into a structured request.
//
// Grammar, whitespace-separated, fields optional in this fixed order:
//
//	!proposals [<limit>] [topic <id>] [status <id>]
//
// Keywords match case-insensitively, numeric fields are non-negative base-10.
// Text not starting with !proposals yields types.ErrNoCommand. Text starting
// with !proposals but breaking the grammar (unknown tokens, out-of-order
// fields) yields types.ErrMalformedCommand.
func ParseCommand(text string) (*types.ProposalsRequest, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.EqualFold(fields[0], commandName) {
		return nil, types.ErrNoCommand
	}

	req := types.DefaultProposalsRequest()
	rest := fields[1:]

	if len(rest) > 0 {
		if limit, ok := parseUint32(rest[0]); ok {
			// Explicit limit, 0 included, passes through verbatim.
			req.Limit = limit
			rest = rest[1:]
		}
	}

	if len(rest) > 0 && strings.EqualFold(rest[0], "topic") {
		code, err := takeCode(rest, "topic")
		if err != nil {
			return nil, err
		}
		req.Topic = &code
		rest = rest[2:]
	}

	if len(rest) > 0 && strings.EqualFold(rest[0], "status") {
		code, err := takeCode(rest, "status")
		if err != nil {
			return nil, err
		}
		req.Status = &code
		rest = rest[2:]
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unexpected token %q", types.ErrMalformedCommand, rest[0])
	}
	return req, nil
}

func takeCode(rest []string, keyword string) (int32, error) {
	if len(rest) < 2 {
		return 0, fmt.Errorf("%w: %s needs an id", types.ErrMalformedCommand, keyword)
	}
	code, ok := parseUint32(rest[1])
	if !ok {
		return 0, fmt.Errorf("%w: bad %s id %q", types.ErrMalformedCommand, keyword, rest[1])
	}
	return int32(code), nil
}

func parseUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
