package token

import "golang.org/x/text/unicode/norm"

// NormalizeIdent returns the NFKC-normalized form of an identifier, matching
// how Python compares identifiers. Token.Text always keeps the raw spelling;
// normalization applies only to lookups.
func NormalizeIdent(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return norm.NFKC.String(s)
		}
	}
	// ASCII fast-path: NFKC is the identity
	return s
}
