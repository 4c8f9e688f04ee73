package term

import (
	"fmt"
	"sync/atomic"
)

// A token is the identity of a single binder. Tokens are minted once per
// binding site and compared by identity only; the hint is carried along for
// rendering but never takes part in equality decisions, so two tokens minted
// with the same hint are still distinct variables.
//
// Because every binder gets a fresh token, substitution never has to rename
// bound variables to avoid capture.
type Token struct {
	id   uint64
	hint string
}

var lastToken atomic.Uint64

// Mint a new token that will not be equal to any previously minted token.
// Safe for concurrent use.
func NewToken(hint string) Token {
	return Token{lastToken.Add(1), hint}
}

// Mint n new tokens sharing the same hint.
func NewTokens(hint string, n int) []Token {
	res := make([]Token, n)
	for i := 0; i < n; i++ {
		res[i] = NewToken(hint)
	}
	return res
}

// True for the zero Token, which NewToken never returns.
func (t Token) IsZero() bool {
	return t.id == 0
}

func (t Token) Hint() string {
	return t.hint
}

// Orders tokens by minting time.
func (t Token) Before(o Token) bool {
	return t.id < o.id
}

// Renders the hint alone, so distinct tokens minted with the same hint print
// the same. Use Unique where the two must be told apart.
func (t Token) String() string {
	if t.hint == "" {
		return fmt.Sprintf("_%d", t.id)
	}
	return t.hint
}

// Renders the hint together with the token's identity, e.g. "x#12".
func (t Token) Unique() string {
	return fmt.Sprintf("%s#%d", t.hint, t.id)
}
