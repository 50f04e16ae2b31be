// Package api
package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/types"
)

func (s *Server) Ping(c echo.Context) error {
	return OK.Build(c)
}

// Proposals serves GET /proposals?limit=&topic=&status=. Absent params keep
// the engine defaults, an explicit limit=0 is passed through.
func (s *Server) Proposals(c echo.Context) error {
	ctx := context.Background()
	req := types.DefaultProposalsRequest()
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Invalid.Build(c)
		}
		req.Limit = uint32(limit)
	}
	if v := c.QueryParam("topic"); v != "" {
		code, err := strconv.ParseUint(v, 10, 31)
		if err != nil {
			return Invalid.Build(c)
		}
		topic := int32(code)
		req.Topic = &topic
	}
	if v := c.QueryParam("status"); v != "" {
		code, err := strconv.ParseUint(v, 10, 31)
		if err != nil {
			return Invalid.Build(c)
		}
		status := int32(code)
		req.Status = &status
	}

	result, err := s.h.Proposals(ctx, req)
	if err != nil {
		return s.buildError(c, err)
	}
	return OK.SetData(result).Build(c)
}

// ProposalInfo serves GET /proposals/:id.
func (s *Server) ProposalInfo(c echo.Context) error {
	ctx := context.Background()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return Invalid.Build(c)
	}
	summary, err := s.h.ProposalInfo(ctx, id)
	if err != nil {
		return s.buildError(c, err)
	}
	return OK.SetData(summary).Build(c)
}

type commandBody struct {
	Command string `json:"command"`
}

// Command serves POST /commands, running raw command text through the same
// engine the chat host uses.
func (s *Server) Command(c echo.Context) error {
	ctx := context.Background()
	var body commandBody
	if err := c.Bind(&body); err != nil {
		return Invalid.Build(c)
	}
	result, err := s.h.Handle(ctx, body.Command)
	if err != nil {
		if errors.Is(err, types.ErrNoCommand) {
			return Invalid.Build(c)
		}
		return s.buildError(c, err)
	}
	return OK.SetData(result).Build(c)
}

func (s *Server) Topics(c echo.Context) error {
	return OK.SetData(registryDump(types.TopicCodes(), types.TopicName)).Build(c)
}

func (s *Server) Statuses(c echo.Context) error {
	return OK.SetData(registryDump(types.StatusCodes(), types.StatusName)).Build(c)
}

type registryEntry struct {
	Code int32  `json:"code"`
	Name string `json:"name"`
}

func registryDump(codes []int32, name func(int32) string) []registryEntry {
	entries := make([]registryEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, registryEntry{Code: code, Name: name(code)})
	}
	return entries
}

func (s *Server) buildError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, types.ErrProposalNotFound):
		return NotFound.Build(c)
	case errors.Is(err, types.ErrTimeout):
		return GatewayTimeout.Build(c)
	case errors.Is(err, types.ErrTransportFailure):
		return BadGateway.Build(c)
	default:
		s.logger.Error("Unhandled query error", zap.Error(err))
		return InternalServer.Build(c)
	}
}
