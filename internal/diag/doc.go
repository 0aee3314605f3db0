// Package diag carries diagnostics from the tokenizer to its callers.
//
// The lexer never prints: it reports through the Reporter interface and the
// caller decides how to render (see internal/diagfmt). Codes are stable,
// numbered identifiers; the 1000 block is lexical, the 2000 block is reserved
// for the parser that consumes the token stream.
package diag
