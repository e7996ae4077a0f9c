package bootstrap

import "context"

// AuditLog is one auditable lifecycle event, such as server shutdown.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
