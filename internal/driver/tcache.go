package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pycst/internal/source"
	"pycst/internal/token"
)

// Current schema version - increment when tokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит потоки токенов по хэшу содержимого файла на диске.
// Повторная токенизация неизменённого файла сводится к одному чтению.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// triviaRecord — один элемент trivia в сериализованном виде.
type triviaRecord struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// runRecord — один межтокенный промежуток. Токены ссылаются на промежутки
// по индексу: разделяемость (After[i] == Before[i+1]) переживает диск.
type runRecord struct {
	Start      uint32
	End        uint32
	Pieces     []triviaRecord
	Newlines   int
	BlankLines int
}

type tokenRecord struct {
	Kind      uint8
	Start     uint32
	End       uint32
	Text      string
	RelIndent string
	Before    int32 // индекс в Runs, -1 если нет
	After     int32
}

type tokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path string
	Hash [32]byte

	Runs   []runRecord
	Tokens []tokenRecord
}

// OpenTokenCache initializes and returns a disk cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог tokens — для удобства очистки
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes a token stream and writes it to the disk cache.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := encodeTokens(file, tokens)

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", rmErr)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached token stream for the file's content hash.
// Возвращает false без ошибки при промахе или несовпадении схемы.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(file.Hash)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false, nil
	}
	return decodeTokens(file, &payload), true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

func encodeTokens(file *source.File, tokens []token.Token) *tokenPayload {
	payload := &tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Hash:   file.Hash,
	}

	runIdx := make(map[*token.Whitespace]int32)
	internRun := func(ws *token.Whitespace) int32 {
		if ws == nil {
			return -1
		}
		if idx, ok := runIdx[ws]; ok {
			return idx
		}
		rec := runRecord{
			Start:      ws.Span.Start,
			End:        ws.Span.End,
			Newlines:   ws.Newlines,
			BlankLines: ws.BlankLines,
		}
		for _, piece := range ws.Pieces {
			rec.Pieces = append(rec.Pieces, triviaRecord{
				Kind:  uint8(piece.Kind),
				Start: piece.Span.Start,
				End:   piece.Span.End,
				Text:  piece.Text,
			})
		}
		idx := int32(len(payload.Runs))
		payload.Runs = append(payload.Runs, rec)
		runIdx[ws] = idx
		return idx
	}

	for _, tok := range tokens {
		payload.Tokens = append(payload.Tokens, tokenRecord{
			Kind:      uint8(tok.Kind),
			Start:     tok.Span.Start,
			End:       tok.Span.End,
			Text:      tok.Text,
			RelIndent: tok.RelIndent,
			Before:    internRun(tok.Before),
			After:     internRun(tok.After),
		})
	}
	return payload
}

func decodeTokens(file *source.File, payload *tokenPayload) []token.Token {
	runs := make([]*token.Whitespace, len(payload.Runs))
	for i, rec := range payload.Runs {
		ws := &token.Whitespace{
			Span:       source.Span{File: file.ID, Start: rec.Start, End: rec.End},
			Newlines:   rec.Newlines,
			BlankLines: rec.BlankLines,
		}
		for _, piece := range rec.Pieces {
			ws.Pieces = append(ws.Pieces, token.Trivia{
				Kind: token.TriviaKind(piece.Kind),
				Span: source.Span{File: file.ID, Start: piece.Start, End: piece.End},
				Text: piece.Text,
			})
		}
		runs[i] = ws
	}

	pick := func(idx int32) *token.Whitespace {
		if idx < 0 || int(idx) >= len(runs) {
			return nil
		}
		return runs[idx]
	}

	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, rec := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Kind:      token.Kind(rec.Kind),
			Span:      source.Span{File: file.ID, Start: rec.Start, End: rec.End},
			Text:      rec.Text,
			RelIndent: rec.RelIndent,
			Before:    pick(rec.Before),
			After:     pick(rec.After),
		})
	}
	return tokens
}
