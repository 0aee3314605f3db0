// Package token defines lexical token kinds, trivia, and whitespace state for
// the pycst tokenizer.
// Invariants:
//   - Token.Text is the exact source text of the lexeme (prefix and quotes
//     included for strings); Indent, Dedent, EOF and the synthesized trailing
//     Newline carry no text.
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - A Whitespace value between two tokens is shared: After of the earlier
//     token and Before of the later one point at the same object.
//   - Kind constants and the keyword table are shared with the parser;
//     changing them is a breaking interface change.
package token
