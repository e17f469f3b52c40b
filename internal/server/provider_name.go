package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used by the provider factory and the instrumented provider so metric labels match log fields.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
