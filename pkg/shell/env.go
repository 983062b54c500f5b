package shell

import (
	"os"
	"regexp"
	"strings"
)

var envVar = regexp.MustCompile(`\${([^}{]+)}`)

// ReplaceEnvVars expands ${NAME} and ${NAME:default} in config text.
// Unknown names without default are left as is.
func ReplaceEnvVars(text string) string {
	return envVar.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-1]

		key, def, hasDef := strings.Cut(key, ":")

		if value, ok := os.LookupEnv(key); ok {
			return value
		}

		if hasDef {
			return def
		}

		return match
	})
}
