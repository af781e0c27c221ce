package llm

import (
	"strings"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// SplitVersions splits multi-version output on the literal separator, trims
// each segment and drops the empty ones. Order is preserved.
func SplitVersions(raw string) []string {
	parts := strings.Split(raw, constants.VersionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
