// Package api
package api

import (
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/handler"
)

type Server struct {
	h handler.Handler

	logger *zap.Logger
}

func (s *Server) SetLogger(logger *zap.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) SetHandler(h handler.Handler) *Server {
	s.h = h
	return s
}
