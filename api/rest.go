// Package api
package api

import (
	"github.com/labstack/echo"
)

// RestServer define all API expose
type RestServer interface {
	// General
	Ping(c echo.Context) error

	// Proposals
	Proposals(c echo.Context) error
	ProposalInfo(c echo.Context) error
	Command(c echo.Context) error

	// Registries
	Topics(c echo.Context) error
	Statuses(c echo.Context) error
}
