// Package accountidtest provides rapid generators that produce valid
// account IDs for property-based tests.
//
// Every generator builds identifiers that satisfy the grammar by
// construction (segment counts, segment lengths and alphabet draws are
// chosen so the result is always valid) instead of generating arbitrary
// text and rejecting, which would throw away nearly every draw.
package accountidtest

import (
	"encoding/hex"
	"strings"

	"pgregory.net/rapid"

	"github.com/near/go-account-id/pkg/accountid"
)

const (
	// edgeAlphabet is allowed at the first and last position of a part
	// and immediately after an internal separator.
	edgeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// innerAlphabet additionally allows the internal separators.
	innerAlphabet = edgeAlphabet + "-_"
)

// Named generates human-chosen account IDs: a top-level part, optionally
// extended with sub-account parts while room remains under MaxLen.
func Named() *rapid.Generator[accountid.AccountID] {
	return rapid.Custom(func(t *rapid.T) accountid.AccountID {
		id := drawPart(t, accountid.MinLen, accountid.MaxLen)

		// Keep prepending parts while there is space for at least one
		// character plus the '.' separator.
		for len(id) < accountid.MaxLen-2 && rapid.Bool().Draw(t, "extend") {
			part := drawPart(t, 1, accountid.MaxLen-len(id)-1)
			id = part + "." + id
		}

		return accountid.MustParse(id)
	})
}

// NearImplicit generates 64-character lowercase hex account IDs, the
// hex encoding of a 32-byte public key.
func NearImplicit() *rapid.Generator[accountid.AccountID] {
	return rapid.Custom(func(t *rapid.T) accountid.AccountID {
		key := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "publicKey")
		return accountid.MustParse(hex.EncodeToString(key))
	})
}

// EthImplicit generates "0x"-prefixed account IDs from 20 address bytes.
func EthImplicit() *rapid.Generator[accountid.AccountID] {
	return rapid.Custom(func(t *rapid.T) accountid.AccountID {
		addr := rapid.SliceOfN(rapid.Byte(), 20, 20).Draw(t, "address")
		return accountid.MustParse("0x" + hex.EncodeToString(addr))
	})
}

// NearDeterministic generates "0s"-prefixed account IDs from 20
// derivation-output bytes.
func NearDeterministic() *rapid.Generator[accountid.AccountID] {
	return rapid.Custom(func(t *rapid.T) accountid.AccountID {
		out := rapid.SliceOfN(rapid.Byte(), 20, 20).Draw(t, "derivation")
		return accountid.MustParse("0s" + hex.EncodeToString(out))
	})
}

// Any generates account IDs of every type.
func Any() *rapid.Generator[accountid.AccountID] {
	return rapid.OneOf(Named(), NearImplicit(), EthImplicit(), NearDeterministic())
}

// drawPart draws one valid account ID part with a length in [minLen,
// maxLen]: edge characters at the ends and after separators, never two
// separators in a row.
func drawPart(t *rapid.T, minLen, maxLen int) string {
	n := rapid.IntRange(minLen, maxLen).Draw(t, "partLen")

	var b strings.Builder
	b.Grow(n)
	afterSeparator := true
	for i := 0; i < n; i++ {
		alphabet := innerAlphabet
		if afterSeparator || i == n-1 {
			alphabet = edgeAlphabet
		}
		c := alphabet[rapid.IntRange(0, len(alphabet)-1).Draw(t, "char")]
		afterSeparator = c == '-' || c == '_'
		b.WriteByte(c)
	}
	return b.String()
}
