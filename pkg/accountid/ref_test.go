package accountid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/near/go-account-id/pkg/accountid"
)

func TestParseRef(t *testing.T) {
	ref, err := accountid.ParseRef("alice.near")
	require.NoError(t, err)
	assert.Equal(t, "alice.near", ref.String())
	assert.Equal(t, 10, ref.Len())
	assert.False(t, ref.IsZero())

	_, err = accountid.ParseRef("invalid.")
	assert.ErrorIs(t, err, accountid.ErrInvalidAccountID)
}

func TestRefParent(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParent string
		wantOK     bool
	}{
		{name: "two parts", input: "alice.near", wantParent: "near", wantOK: true},
		{name: "three parts", input: "sub.alice.near", wantParent: "alice.near", wantOK: true},
		{name: "top level", input: "near", wantOK: false},
		{
			name:   "implicit account",
			input:  "248e104d1d4764d713c4211c13808c8fc887869c580f4178e60538ac5c2a0b26",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := accountid.MustParse(tt.input).Ref()
			parent, ok := ref.Parent()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantParent, parent.String())
				assert.True(t, ref.IsSubAccountOf(parent))
			}
		})
	}
}

func TestRefParentChainStaysValid(t *testing.T) {
	// Every suffix of a valid account ID obtained by removing whole
	// leading parts is itself valid, so Parent never needs to re-validate.
	ref := accountid.MustParse("a.b-c.d_e.near").Ref()
	for {
		parent, ok := ref.Parent()
		if !ok {
			break
		}
		assert.NoError(t, accountid.Validate(parent.String()))
		ref = parent
	}
	assert.Equal(t, "near", ref.String())
}

func TestRefIsTopLevel(t *testing.T) {
	topLevel := []string{
		"aa",
		"a-a",
		"100",
		"near",
		"b-o_w_e-n",
		"0xb794f5ea0ba39494ce839613fffba74279579268",
		"0123456789012345678901234567890123456789012345678901234567890123",
	}
	for _, id := range topLevel {
		assert.True(t, accountid.MustParse(id).IsTopLevel(), "IsTopLevel(%q)", id)
	}

	notTopLevel := []string{
		"near.a",
		"bro.wen",
		"a.b-a.ra",
		"illia.cheapaccounts.near",
		// Grammatically valid but reserved.
		"system",
	}
	for _, id := range notTopLevel {
		assert.False(t, accountid.MustParse(id).IsTopLevel(), "IsTopLevel(%q)", id)
	}
}

func TestRefIsSubAccountOf(t *testing.T) {
	okPairs := []struct{ parent, sub string }{
		{"test", "a.test"},
		{"test-me", "abc.test-me"},
		{"gmail.com", "abc.gmail.com"},
		{"gmail.com", "abc-lol.gmail.com"},
		{"gmail.com", "abc_lol.gmail.com"},
		{"gmail.com", "bro-abc_lol.gmail.com"},
		{"g0", "0g.g0"},
		{"1g", "1g.1g"},
		{"5-3", "4_2.5-3"},
	}
	for _, p := range okPairs {
		parent := accountid.MustParse(p.parent).Ref()
		sub := accountid.MustParse(p.sub)
		assert.True(t, sub.IsSubAccountOf(parent), "%q should be a sub-account of %q", p.sub, p.parent)
	}

	badPairs := []struct{ parent, sub string }{
		// Same account.
		{"test", "test"},
		// Suffix of the text, but not on a part boundary.
		{"test", "a-test"},
		{"test", "etest"},
		{"test", "retest"},
		{"est", "test"},
		// Two levels down, not a direct sub-account.
		{"test", "a1.a.test"},
		{"com", "abc.gmail.com"},
		// Different accounts entirely.
		{"test", "a.etest"},
		{"b794f5ea0ba39494ce839613fffba74279579268", "0xb794f5ea0ba39494ce839613fffba74279579268"},
	}
	for _, p := range badPairs {
		parent := accountid.MustParse(p.parent).Ref()
		sub := accountid.MustParse(p.sub)
		assert.False(t, sub.IsSubAccountOf(parent), "%q should not be a sub-account of %q", p.sub, p.parent)
	}
}

func TestRefIsSystem(t *testing.T) {
	assert.True(t, accountid.MustParse("system").IsSystem())
	assert.False(t, accountid.MustParse("alice.near").IsSystem())
	assert.False(t, accountid.MustParse("system.near").IsSystem())
}

func TestRefEqualityAndOrdering(t *testing.T) {
	a := accountid.MustParse("alice.near")
	b := accountid.MustParse("bob.near")

	assert.True(t, a.Ref().Equal(a.Ref()))
	assert.False(t, a.Ref().Equal(b.Ref()))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	// A view and an owned value holding identical text agree under every
	// comparison path.
	assert.Equal(t, a.Compare(b), a.Ref().Compare(b.Ref()))
	assert.True(t, a.Equal(a.Ref().Owned()))
}

func TestRefOwnedDetaches(t *testing.T) {
	parent, ok := accountid.MustParse("app.alice.near").Parent()
	require.True(t, ok)

	owned := parent.Owned()
	assert.Equal(t, "alice.near", owned.String())
	assert.True(t, owned.Ref().Equal(parent))
}

func TestRefUnchecked(t *testing.T) {
	// The trusted entry point performs no validation at all; the caller
	// holds the invariant.
	ref := accountid.RefUnchecked("alice.near")
	assert.Equal(t, "alice.near", ref.String())

	bogus := accountid.RefUnchecked("NOT/VALIDATED")
	assert.Equal(t, "NOT/VALIDATED", bogus.String())
}
