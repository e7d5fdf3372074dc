package matching

import "strings"

// Normalize canonicalizes free text before any comparison: lower-case, every
// rune outside [a-z0-9 ] replaced with a space, whitespace runs collapsed,
// result trimmed. Pure and total; formatting differences never affect
// matching.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}
