package id

import (
	"crypto/rand"
	"strings"
)

const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID creates a unique alphanumeric ID of the given length.
func GenerateID(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// SessionID builds a session identifier that stays readable in the score
// log: a slug of the player name plus a random suffix.
func SessionID(player string) string {
	slug := slugify(player)
	if slug == "" {
		slug = "player"
	}
	return slug + "-" + GenerateID(8)
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
