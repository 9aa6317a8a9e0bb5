// Package mask produces display-safe renderings of secret-bearing values such
// as connection strings and API keys. Masking never alters the stored value;
// it only controls what is printed.
package mask

import "strings"

// Placeholders used in masked output.
const (
	Placeholder   = "****"
	NotConfigured = "(not configured)"
)

const (
	tokenVisible   = 4
	tokenMinMasked = 8
)

// URL hides the password of a "user:password@host" style value. Everything
// between the first ':' and the first '@' is replaced with Placeholder; the
// part after '@' is kept verbatim.
//
// Values without '@', or without ':' before it, are returned unchanged. A
// scheme such as "postgres://" counts as the first ':' and is masked along
// with the credentials.
func URL(value string) string {
	creds, host, ok := strings.Cut(value, "@")
	if !ok {
		return value
	}
	user, _, ok := strings.Cut(creds, ":")
	if !ok {
		return value
	}
	return user + ":" + Placeholder + "@" + host
}

// Token shows the first and last four characters of values longer than eight
// characters and replaces shorter values entirely.
func Token(value string) string {
	runes := []rune(value)
	if len(runes) <= tokenMinMasked {
		return Placeholder
	}
	return string(runes[:tokenVisible]) + "..." + string(runes[len(runes)-tokenVisible:])
}

// Display renders an optional secret. Absent or empty values render as
// NotConfigured, everything else goes through fn.
func Display(value string, present bool, fn func(string) string) string {
	if !present || value == "" {
		return NotConfigured
	}
	return fn(value)
}
