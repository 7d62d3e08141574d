package resolver

import "regexp"

// placeholderPattern matches both accepted token syntaxes: ${NAME} and
// {$NAME}. The captured name is taken literally, with no nesting or
// recursive expansion.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}|\{\$([^}]+)\}`)

// Substitute replaces every placeholder token in s with the variable's
// value from lookup. Tokens whose variable is unset or empty stay verbatim,
// so "not configured" never collapses into an empty string.
func Substitute(s string, lookup Lookup) string {
	if lookup == nil {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		if value, ok := lookup(placeholderName(token)); ok && value != "" {
			return value
		}
		return token
	})
}

func placeholderName(token string) string {
	m := placeholderPattern.FindStringSubmatch(token)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
