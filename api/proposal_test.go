// Package api
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/types"
)

// stubHandler records the request the server built from HTTP input.
type stubHandler struct {
	lastReq     *types.ProposalsRequest
	lastCommand string
	err         error
}

func (s *stubHandler) Handle(_ context.Context, commandText string) (*types.ProposalsResult, error) {
	s.lastCommand = commandText
	if s.err != nil {
		return nil, s.err
	}
	return &types.ProposalsResult{Proposals: []*types.ProposalSummary{}}, nil
}

func (s *stubHandler) Proposals(_ context.Context, req *types.ProposalsRequest) (*types.ProposalsResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &types.ProposalsResult{Proposals: []*types.ProposalSummary{}}, nil
}

func (s *stubHandler) ProposalInfo(_ context.Context, proposalID uint64) (*types.ProposalSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &types.ProposalSummary{ID: fmt.Sprintf("%d", proposalID)}, nil
}

func setupTestServer(stub *stubHandler) *Server {
	srv := &Server{}
	return srv.SetHandler(stub).SetLogger(zap.NewNop())
}

func doGET(t *testing.T, srv *Server, target string, fn func(echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, fn(c))
	return rec
}

func TestProposalsQueryParams(t *testing.T) {
	stub := &stubHandler{}
	srv := setupTestServer(stub)

	doGET(t, srv, "/api/v1/proposals?limit=50&topic=13&status=4", srv.Proposals)
	assert.Equal(t, uint32(50), stub.lastReq.Limit)
	assert.Equal(t, int32(13), *stub.lastReq.Topic)
	assert.Equal(t, int32(4), *stub.lastReq.Status)
}

func TestProposalsQueryDefaults(t *testing.T) {
	stub := &stubHandler{}
	srv := setupTestServer(stub)

	rec := doGET(t, srv, "/api/v1/proposals", srv.Proposals)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint32(10), stub.lastReq.Limit)
	assert.Nil(t, stub.lastReq.Topic)
	assert.Nil(t, stub.lastReq.Status)
}

func TestProposalsQueryLimitZero(t *testing.T) {
	stub := &stubHandler{}
	srv := setupTestServer(stub)

	doGET(t, srv, "/api/v1/proposals?limit=0", srv.Proposals)
	assert.Equal(t, uint32(0), stub.lastReq.Limit)
}

func TestProposalsQueryBadParams(t *testing.T) {
	stub := &stubHandler{}
	srv := setupTestServer(stub)

	for _, target := range []string{
		"/api/v1/proposals?limit=abc",
		"/api/v1/proposals?topic=-1",
		"/api/v1/proposals?status=x",
	} {
		rec := doGET(t, srv, target, srv.Proposals)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestProposalsErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: x", types.ErrTimeout), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: x", types.ErrTransportFailure), http.StatusBadGateway},
		{fmt.Errorf("%w: x", types.ErrProposalNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		stub := &stubHandler{err: tc.err}
		srv := setupTestServer(stub)
		rec := doGET(t, srv, "/api/v1/proposals", srv.Proposals)
		assert.Equal(t, tc.code, rec.Code)
	}
}

func TestCommand(t *testing.T) {
	stub := &stubHandler{}
	srv := setupTestServer(stub)

	e := echo.New()
	body := `{"command":"!proposals 50 topic 13"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, srv.Command(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "!proposals 50 topic 13", stub.lastCommand)
}

func TestCommandUnrecognized(t *testing.T) {
	stub := &stubHandler{err: types.ErrNoCommand}
	srv := setupTestServer(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(`{"command":"gm"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, srv.Command(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTopicsRegistryDump(t *testing.T) {
	srv := setupTestServer(&stubHandler{})
	rec := doGET(t, srv, "/api/v1/topics", srv.Topics)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IcOsVersionElection")
	assert.NotContains(t, rec.Body.String(), `"code":11,`)
}
