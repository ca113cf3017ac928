package utils

import "encoding/hex"

// FormatDigest hex-encodes a digest for display.
func FormatDigest(sum []byte) string {
	return hex.EncodeToString(sum)
}

// Truncate shortens long hex values (chain hashes, public keys) for display.
// Values at or under max runes are returned unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
