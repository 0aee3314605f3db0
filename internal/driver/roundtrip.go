package driver

import (
	"strings"

	"pycst/internal/lexer"
	"pycst/internal/token"
)

// RoundtripResult описывает проверку побайтового восстановления исходника.
type RoundtripResult struct {
	OK bool
	// DivergeAt — байтовое смещение первого расхождения (осмысленно при !OK)
	DivergeAt int
	// Want и Got — небольшие окна вокруг расхождения для сообщения об ошибке
	Want string
	Got  string
	// Reconstructed — полный восстановленный текст
	Reconstructed string
}

// Reconstruct склеивает исходный текст обратно из потока токенов:
// Before+Text каждого токена, плюс After последнего.
func Reconstruct(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Before.Text())
		sb.WriteString(tok.Text)
	}
	if len(tokens) > 0 {
		sb.WriteString(tokens[len(tokens)-1].After.Text())
	}
	return sb.String()
}

// Roundtrip токенизирует файл и проверяет, что склейка токенов воспроизводит
// его побайтово. При лексической ошибке гарантия не действует — вызывающий
// смотрит в Bag.
func Roundtrip(path string, maxDiagnostics int, lexOpts lexer.Options) (*TokenizeResult, RoundtripResult, error) {
	res, err := Tokenize(path, maxDiagnostics, lexOpts)
	if err != nil {
		return nil, RoundtripResult{}, err
	}
	return res, VerifyRoundtrip(string(res.File.Content), res.Tokens), nil
}

// VerifyRoundtrip сравнивает восстановленный текст с оригиналом и находит
// первое расхождение.
func VerifyRoundtrip(original string, tokens []token.Token) RoundtripResult {
	got := Reconstruct(tokens)
	if got == original {
		return RoundtripResult{OK: true, Reconstructed: got}
	}

	at := 0
	for at < len(original) && at < len(got) && original[at] == got[at] {
		at++
	}
	return RoundtripResult{
		DivergeAt:     at,
		Want:          window(original, at),
		Got:           window(got, at),
		Reconstructed: got,
	}
}

func window(s string, at int) string {
	const radius = 20
	lo := at - radius
	if lo < 0 {
		lo = 0
	}
	hi := at + radius
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}
