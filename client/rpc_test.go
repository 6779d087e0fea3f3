package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/easelhq/easel/api"
)

type rpcCall struct {
	method string
	params json.RawMessage
}

// fakeRPC records every call and answers from per-method handlers. A method
// with no handler succeeds with an empty result.
type fakeRPC struct {
	mu       sync.Mutex
	calls    []rpcCall
	handlers map[string]func(params json.RawMessage) (any, error)
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{handlers: map[string]func(json.RawMessage) (any, error){}}
}

func (f *fakeRPC) handle(method string, fn func(params json.RawMessage) (any, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = fn
}

func (f *fakeRPC) Call(ctx context.Context, method string, params, result any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.calls = append(f.calls, rpcCall{method: method, params: raw})
	handler := f.handlers[method]
	f.mu.Unlock()

	if handler == nil {
		return nil
	}
	out, err := handler(raw)
	if err != nil {
		return err
	}
	if result == nil || out == nil {
		return nil
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, result)
}

func (f *fakeRPC) callsFor(method string) []rpcCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []rpcCall
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeRPC) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func decodeParams[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// validSession returns a session already resolved against rpc.
func validSession(t *testing.T, rpc *fakeRPC, canComment bool) *Session {
	t.Helper()
	rpc.handle(api.MethodReviewerValidate, func(json.RawMessage) (any, error) {
		return api.ReviewerStatus{Label: "Jordan", CanComment: canComment}, nil
	})
	s := NewSession(rpc)
	require.NoError(t, s.Validate(context.Background()))
	require.Equal(t, SessionValid, s.State())
	return s
}

// testQueue returns a queue that never fires on its own; tests drive it
// with Flush.
func testQueue(t *testing.T) *Queue {
	t.Helper()
	q := NewQueue(time.Hour, nil)
	t.Cleanup(q.Close)
	return q
}

func TestHTTPClient_Call(t *testing.T) {
	var gotAuth, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotMethod = req.Method
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  api.ReviewerStatus{Label: "Sam", CanComment: true},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok-1")
	var status api.ReviewerStatus
	require.NoError(t, c.Call(context.Background(), api.MethodReviewerValidate, nil, &status))
	require.Equal(t, "Bearer tok-1", gotAuth)
	require.Equal(t, api.MethodReviewerValidate, gotMethod)
	require.Equal(t, "Sam", status.Label)
	require.True(t, status.CanComment)
}

func TestHTTPClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "bad")
	err := c.Call(context.Background(), api.MethodReviewerValidate, nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32001, "message": "read-only token"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok")
	err := c.Call(context.Background(), api.MethodCommentUpsert, api.CommentUpsertParams{}, nil)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, -32001, rpcErr.Code)
}
