package domain

import (
	"slices"
	"strings"
)

// FreeformVariableKeys are template parameters holding arbitrary text. They are
// never passed to the compiler as variables.
var FreeformVariableKeys = []string{"customCssCode", "textLogo", "slogan", "copyText"}

// SanitizeVariables turns raw template parameters into values the Less engine
// accepts. The input map is not modified.
//
// Values are trimmed. A value containing a path separator is wrapped in double
// quotes so it is read as a string literal, and an empty value becomes "".
func SanitizeVariables(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for name, value := range raw {
		if slices.Contains(FreeformVariableKeys, name) {
			continue
		}
		out[name] = sanitizeValue(value)
	}
	return out
}

func sanitizeValue(value string) string {
	v := strings.TrimSpace(value)
	if strings.Contains(v, "/") {
		v = `"` + v + `"`
	}
	if v == "" {
		v = `""`
	}
	return v
}
