package slug

import (
	"strings"
)

// Generate creates a URL-friendly slug from the given product name.
// The substitution rules run in order: spelled-out ampersands first so the
// surrounding spaces collapse into hyphens with the rest.
//
// Examples:
//   - "Aurora Dashboard Kit" → "aurora-dashboard-kit"
//   - "Docs & Templates"     → "docs-and-templates"
//   - "UI/UX Patterns"       → "ui-ux-patterns"
func Generate(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " & ", " and ")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", "-")
	return strings.ReplaceAll(s, " ", "-")
}
