// Package testkit holds shared invariant checks for token streams. They are
// used by the fuzz harness and by package tests to validate full streams
// without repeating the same assertions everywhere.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"pycst/internal/source"
	"pycst/internal/token"
)

// CheckTokenInvariants runs the structural invariants every complete token
// stream must satisfy:
//  1. the stream is non-empty and ends with exactly one EOF or a terminal
//     Invalid token
//  2. every span lies within the file bounds and token offsets never go
//     backwards
//  3. Before/After form a shared chain: tok[i].After == tok[i+1].Before
//  4. virtual tokens carry no source text
func CheckTokenInvariants(tokens []token.Token, file *source.File) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}

	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF && last.Kind != token.Invalid {
		return fmt.Errorf("stream ends with %v, want EOF or Invalid", last.Kind)
	}
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF at position %d is not last (stream has %d tokens)", i, len(tokens))
		}
	}

	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var cursor uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != file.ID {
			return fmt.Errorf("token %d span points to file %d, want %d", i, sp.File, file.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d span %v out of bounds (len=%d)", i, sp, lenContent)
		}
		if sp.Start < cursor {
			return fmt.Errorf("token %d span %v goes backwards past offset %d", i, sp, cursor)
		}
		cursor = sp.End
		if tok.IsVirtual() && tok.Text != "" {
			return fmt.Errorf("virtual token %d (%v) carries text %q", i, tok.Kind, tok.Text)
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].After != tokens[i+1].Before {
			return fmt.Errorf("tokens %d and %d do not share a whitespace run", i, i+1)
		}
	}
	return nil
}

// CheckRoundTrip verifies that splicing the stream back together reproduces
// the file exactly. Valid only for streams that end with EOF: a terminal
// Invalid token means the tail of the file was never scanned.
func CheckRoundTrip(tokens []token.Token, file *source.File) error {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("round-trip check requires a stream ending with EOF")
	}
	var sb strings.Builder
	sb.Grow(len(file.Content))
	for _, tok := range tokens {
		sb.WriteString(tok.Before.Text())
		sb.WriteString(tok.Text)
	}
	sb.WriteString(tokens[len(tokens)-1].After.Text())
	if got := sb.String(); got != string(file.Content) {
		return fmt.Errorf("reconstruction differs from source (%d vs %d bytes)", len(got), len(file.Content))
	}
	return nil
}
