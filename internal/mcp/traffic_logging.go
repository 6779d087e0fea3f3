package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every MCP message at debug level. At any
// other log level it is inert.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			log := logger.With("direction", direction, "method", method, "session_id", requestSessionID(req))
			log.Debug("mcp traffic", "stage", "request", "params", payloadString(requestParams(req)))

			result, err := next(ctx, method, req)

			// Notifications have no response worth echoing.
			if !strings.HasPrefix(method, "notifications/") {
				attrs := []any{"stage", "response", "result", payloadString(result)}
				if err != nil {
					attrs = append(attrs, "error", err)
				}
				log.Debug("mcp traffic", attrs...)
			}
			return result, err
		}
	}
}

// requestSessionID tolerates partially constructed requests; the SDK can
// invoke middleware before a session is attached.
func requestSessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	if session := req.GetSession(); session != nil {
		return session.ID()
	}
	return ""
}

func requestParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func payloadString(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
