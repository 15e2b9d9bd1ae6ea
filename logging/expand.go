package logging

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var pathVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandPath expands environment variables in a handler file target.
//
// Semantics:
//   - `$VAR` and `${VAR}` are expanded via os.ExpandEnv.
//   - A referenced `${VAR}` missing from the environment is a configuration
//     error; file sinks must not be silently created at a literal-`$` path.
//   - `$$` emits a literal `$`.
func expandPath(s string) (string, error) {
	const dollarSentinel = "\x00TRACEKIT_DOLLAR\x00"
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	missing := make(map[string]struct{})
	for _, match := range pathVarPattern.FindAllStringSubmatch(s, -1) {
		key := match[1]
		if _, ok := os.LookupEnv(key); !ok {
			missing[key] = struct{}{}
		}
	}
	if len(missing) > 0 {
		keys := make([]string, 0, len(missing))
		for k := range missing {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", fmt.Errorf("%w: undefined environment variables in file target: %s",
			ErrInvalidConfig, strings.Join(keys, ", "))
	}

	s = os.ExpandEnv(s)
	s = strings.ReplaceAll(s, dollarSentinel, "$")
	return s, nil
}
