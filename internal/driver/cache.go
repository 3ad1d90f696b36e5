package driver

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"slof/internal/project"
	"slof/internal/source"
	"slof/internal/token"
)

// Bump when the payload layout or token kinds change.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores token lists of successfully tokenized files on disk,
// keyed by file content and lexer options. Safe for concurrent use: writes
// go through a temp file and an atomic rename.
type TokenCache struct {
	dir string
}

const (
	litNone uint8 = iota
	litBool
	litUint
	litFloat
	litText
)

type cachedToken struct {
	Kind  uint8   `msgpack:"k"`
	Lit   uint8   `msgpack:"l,omitempty"`
	Bool  bool    `msgpack:"b,omitempty"`
	Uint  uint64  `msgpack:"u,omitempty"`
	Float float64 `msgpack:"f,omitempty"`
	Text  string  `msgpack:"s,omitempty"`
	Start uint32  `msgpack:"o"`
	End   uint32  `msgpack:"e"`
}

// cachePayload is the on-disk record for one file.
type cachePayload struct {
	Schema      uint16         `msgpack:"schema"`
	Fingerprint string         `msgpack:"fingerprint"`
	ContentHash project.Digest `msgpack:"content"`
	Tokens      []cachedToken  `msgpack:"tokens"`
}

// OpenTokenCache opens the cache under $XDG_CACHE_HOME/<app>, falling back
// to ~/.cache/<app>.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app))
}

// OpenTokenCacheAt opens a cache rooted at dir.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string { return c.dir }

func cacheKey(content project.Digest, fingerprint string) project.Digest {
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], tokenCacheSchemaVersion)
	return project.Combine(content, schema[:], []byte(fingerprint))
}

func (c *TokenCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put stores toks for a file with the given content hash.
func (c *TokenCache) Put(content project.Digest, fingerprint string, toks []token.Token) (err error) {
	if c == nil {
		return nil
	}
	payload := cachePayload{
		Schema:      tokenCacheSchemaVersion,
		Fingerprint: fingerprint,
		ContentHash: content,
		Tokens:      make([]cachedToken, 0, len(toks)),
	}
	for _, tok := range toks {
		payload.Tokens = append(payload.Tokens, encodeToken(tok))
	}

	p := c.pathFor(cacheKey(content, fingerprint))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the tokens of a file, stamping file on every span. A missing
// or stale entry is a miss, not an error.
func (c *TokenCache) Get(content project.Digest, fingerprint string, file source.FileID) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	data, err := os.ReadFile(c.pathFor(cacheKey(content, fingerprint)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("token cache: corrupt entry: %w", err)
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Fingerprint != fingerprint || payload.ContentHash != content {
		return nil, false, nil
	}

	toks := make([]token.Token, 0, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tok, ok := decodeToken(ct, file)
		if !ok {
			return nil, false, fmt.Errorf("token cache: corrupt token %d", i)
		}
		toks = append(toks, tok)
	}
	return toks, true, nil
}

func encodeToken(tok token.Token) cachedToken {
	ct := cachedToken{Kind: uint8(tok.Kind), Start: tok.Span.Start, End: tok.Span.End}
	switch v := tok.Literal.(type) {
	case token.Bool:
		ct.Lit, ct.Bool = litBool, bool(v)
	case token.Uint:
		ct.Lit, ct.Uint = litUint, uint64(v)
	case token.Float:
		ct.Lit, ct.Float = litFloat, float64(v)
	case token.Text:
		ct.Lit, ct.Text = litText, string(v)
	}
	return ct
}

func decodeToken(ct cachedToken, file source.FileID) (token.Token, bool) {
	var lit token.Literal
	switch ct.Lit {
	case litNone:
	case litBool:
		lit = token.Bool(ct.Bool)
	case litUint:
		lit = token.Uint(ct.Uint)
	case litFloat:
		lit = token.Float(ct.Float)
	case litText:
		lit = token.Text(ct.Text)
	default:
		return token.Token{}, false
	}
	kind := token.Kind(ct.Kind)
	if !kind.Accepts(lit) || ct.End < ct.Start {
		return token.Token{}, false
	}
	return token.New(kind, lit, source.Span{File: file, Start: ct.Start, End: ct.End}), true
}
