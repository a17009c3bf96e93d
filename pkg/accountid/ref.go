package accountid

import "strings"

// Ref is a validated, non-owning view of an account ID. It is to
// AccountID what a string slice is to its backing buffer: constructing a
// Ref never copies, and deriving one Ref from another (Parent) shares the
// same backing text.
//
// Go strings are immutable, so a Ref can never be invalidated by changes
// to its source. The only cost of the sharing is that a live Ref keeps the
// whole backing string reachable; use Owned to detach.
//
// The zero Ref is not a valid account ID; IsZero reports it.
type Ref struct {
	id string
}

// ParseRef validates s and returns a view over it. The returned Ref
// shares s's storage.
func ParseRef(s string) (Ref, error) {
	if err := Validate(s); err != nil {
		return Ref{}, err
	}
	return Ref{id: s}, nil
}

// RefUnchecked returns a view over s without validating it. The caller is
// responsible for the account ID invariant; use it only where the text is
// already known to be valid.
func RefUnchecked(s string) Ref {
	return Ref{id: s}
}

// String returns the account ID text. Ref implements fmt.Stringer.
func (r Ref) String() string {
	return r.id
}

// Len returns the length of the account ID in bytes. Valid account IDs
// are ASCII, so this is also the character count.
func (r Ref) Len() int {
	return len(r.id)
}

// IsZero reports whether r is the zero value.
func (r Ref) IsZero() bool {
	return r.id == ""
}

// AccountType classifies the account by its textual shape. The ETH and
// deterministic shapes are checked before the NEAR-implicit one; they
// cannot overlap (42 versus 64 characters), but the order mirrors the
// protocol's published precedence.
func (r Ref) AccountType() AccountType {
	switch {
	case isEthImplicit(r.id):
		return EthImplicitAccount
	case isNearDeterministic(r.id):
		return NearDeterministicAccount
	case isNearImplicit(r.id):
		return NearImplicitAccount
	default:
		return NamedAccount
	}
}

// IsImplicit reports whether the account's text encodes key or derivation
// material. Shorthand for AccountType().IsImplicit().
func (r Ref) IsImplicit() bool {
	return r.AccountType().IsImplicit()
}

// Parent returns the view of the account ID with its leading part
// removed: the parent of "app.alice.near" is "alice.near". It reports
// false for single-part account IDs, which have no parent. The returned
// Ref shares r's backing text.
func (r Ref) Parent() (Ref, bool) {
	_, rest, found := strings.Cut(r.id, ".")
	if !found {
		return Ref{}, false
	}
	return Ref{id: rest}, true
}

// IsTopLevel reports whether the account ID is a top-level account:
// a single part, and not the reserved system account.
func (r Ref) IsTopLevel() bool {
	return !r.IsSystem() && !strings.Contains(r.id, ".")
}

// IsSubAccountOf reports whether r is a direct sub-account of parent:
// exactly one additional leading part. "app.alice.near" is a sub-account
// of "alice.near" but not of "near".
func (r Ref) IsSubAccountOf(parent Ref) bool {
	prefix, ok := strings.CutSuffix(r.id, parent.id)
	if !ok {
		return false
	}
	prefix, ok = strings.CutSuffix(prefix, ".")
	return ok && !strings.Contains(prefix, ".")
}

// IsSystem reports whether r is the reserved system account. "system" is
// grammatically valid but cannot be created or used as a top-level
// account.
func (r Ref) IsSystem() bool {
	return r.id == "system"
}

// Equal reports whether two views hold the same account ID text.
// Comparison is over the exact character sequence; valid account IDs are
// lowercase by construction, so no case folding is involved.
func (r Ref) Equal(other Ref) bool {
	return r.id == other.id
}

// Compare returns -1, 0 or 1 ordering two views lexicographically by
// their text. A Ref and an AccountID holding equal text order the same.
func (r Ref) Compare(other Ref) int {
	return strings.Compare(r.id, other.id)
}

// Owned copies the view's text into a new AccountID. The copy detaches
// the result from r's backing string, so an owned value never pins a
// larger parse buffer. No re-validation runs: r already holds the
// invariant.
func (r Ref) Owned() AccountID {
	return AccountID{id: strings.Clone(r.id)}
}

// MarshalText implements encoding.TextMarshaler. The canonical external
// form of an account ID is exactly its text.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.id), nil
}
