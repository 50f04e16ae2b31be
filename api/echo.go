// Package api
package api

import (
	"fmt"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/icpkit/nns-proposals-backend/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(gr *echo.Group, srv RestServer) {
	apis := []restDefinition{
		{
			method:      echo.GET,
			path:        "/ping",
			fn:          srv.Ping,
			middlewares: nil,
		},
		// Proposals
		{
			method: echo.GET,
			// Query params: ?limit=10&topic=13&status=4
			path: "/proposals",
			fn:   srv.Proposals,
		},
		{
			method: echo.GET,
			path:   "/proposals/:id",
			fn:     srv.ProposalInfo,
		},
		{
			method: echo.POST,
			path:   "/commands",
			fn:     srv.Command,
		},
		// Registries
		{
			method: echo.GET,
			path:   "/topics",
			fn:     srv.Topics,
		},
		{
			method: echo.GET,
			path:   "/statuses",
			fn:     srv.Statuses,
		},
	}
	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

func Start(e *echo.Echo, srv RestServer, cfg cfg.BackendConfig) {
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Gzip())

	v1Gr := e.Group("/api/v1")
	bind(v1Gr, srv)
	if err := e.Start(":" + cfg.Port); err != nil {
		fmt.Println("cannot start echo server", err.Error())
		panic(err)
	}
}
