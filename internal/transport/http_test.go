package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easelhq/easel/api"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	method string
	access Access
}

func (h *testHandler) Handle(_ context.Context, access Access, method string, params json.RawMessage) (any, error) {
	h.method = method
	h.access = access
	return map[string]string{"ok": "yes"}, nil
}

func TestHTTPServer_RPC(t *testing.T) {
	handler := &testHandler{}
	resolver := &testResolver{tokenToAccess: map[string]Access{
		"token": {Key: "rev1", Label: "Alice", CanComment: true},
	}}
	server := httptest.NewServer(NewServer(handler, AuthMiddleware(resolver)))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"comments_list","id":1}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/rpc", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "comments_list", handler.method)
	require.Equal(t, "rev1", handler.access.Key)
}

func TestHTTPServer_RPCRequiresAuth(t *testing.T) {
	handler := &testHandler{}
	resolver := &testResolver{tokenToAccess: map[string]Access{}}
	server := httptest.NewServer(NewServer(handler, AuthMiddleware(resolver)))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"comments_list","id":1}`)
	resp, err := http.Post(server.URL+"/rpc", "application/json", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTPServer_Health(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler, nil))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_ReadOnlyTokenBlocked(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)
	access := Access{Key: "rev1", Label: "Viewer", CanComment: false}

	_, err := h.Handle(context.Background(), access, api.MethodCommentUpsert, nil)
	require.ErrorIs(t, err, ErrReadOnlyToken)
	require.Equal(t, ErrReadOnly, errorCode(err))
}

func TestHandler_ReadOnlyTokenCanValidate(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)
	access := Access{Key: "rev1", Label: "Viewer", CanComment: false}

	result, err := h.Handle(context.Background(), access, api.MethodReviewerValidate, nil)
	require.NoError(t, err)
	status := result.(api.ReviewerStatus)
	require.Equal(t, "Viewer", status.Label)
	require.False(t, status.CanComment)
}

func TestHandler_MethodNotFound(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)
	access := Access{Key: "rev1", CanComment: true}

	_, err := h.Handle(context.Background(), access, "no_such_method", nil)
	require.Error(t, err)
	require.Equal(t, ErrMethodNotFound, errorCode(err))
}
