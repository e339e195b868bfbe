// Package tenant derives the engine group key under which all graph data for
// one tenant is partitioned.
package tenant

// Scoper maps caller-supplied tenant IDs to engine group keys. The prefix is
// fixed at startup; two distinct tenant IDs can never collide on the same key.
type Scoper struct {
	prefix string
}

func NewScoper(prefix string) *Scoper {
	return &Scoper{prefix: prefix}
}

// Scope returns the group key for a tenant ID. Handlers must pass only the
// scoped key, never the raw tenant ID, to the graph engine.
func (s *Scoper) Scope(tenantID string) string {
	return s.prefix + tenantID
}
