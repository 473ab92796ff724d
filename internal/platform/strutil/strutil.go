// Package strutil holds small string helpers shared across services.
package strutil

// IsEmpty reports whether value has zero length. Whitespace counts as content.
func IsEmpty(value string) bool {
	return len(value) == 0
}
