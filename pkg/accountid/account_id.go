package accountid

import (
	"fmt"
	"strings"
)

// AccountID is a validated NEAR account identifier that owns its text.
// It is immutable after construction: there is no mutation API, and
// "changing" an account ID always means constructing a new one. Values
// are safe to share across goroutines without locking.
//
// All read capabilities live on Ref; AccountID reaches them through the
// borrow returned by Ref() and forwards the common ones for convenience.
//
// The zero AccountID is not a valid account ID; IsZero reports it.
type AccountID struct {
	id string
}

// Parse validates s and returns it as an owned AccountID.
func Parse(s string) (AccountID, error) {
	if err := Validate(s); err != nil {
		return AccountID{}, err
	}
	return AccountID{id: s}, nil
}

// MustParse is like Parse but panics if s is not a valid account ID. It
// is intended for compile-time literals and other inputs whose validity
// the caller has established out of band; a panic here is a programming
// error, not a runtime condition.
func MustParse(s string) AccountID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("accountid.MustParse(%q): %v", s, err))
	}
	return id
}

// NewUnchecked returns s as an AccountID without validating it. The
// caller is responsible for the account ID invariant. Construction
// without validation has been illegal in the protocol for a long time;
// this entry point exists for legacy callers that validate at a later
// stage, and its call sites should be individually reviewable.
func NewUnchecked(s string) AccountID {
	return AccountID{id: s}
}

// Ref borrows the account ID as a view. The view shares the AccountID's
// storage; no copy or validation happens.
func (a AccountID) Ref() Ref {
	return Ref{id: a.id}
}

// String returns the account ID text. AccountID implements fmt.Stringer.
func (a AccountID) String() string {
	return a.id
}

// Len returns the length of the account ID in bytes.
func (a AccountID) Len() int {
	return len(a.id)
}

// IsZero reports whether a is the zero value.
func (a AccountID) IsZero() bool {
	return a.id == ""
}

// AccountType classifies the account by its textual shape.
func (a AccountID) AccountType() AccountType {
	return a.Ref().AccountType()
}

// IsImplicit reports whether the account's text encodes key or derivation
// material rather than a human-chosen name.
func (a AccountID) IsImplicit() bool {
	return a.Ref().IsImplicit()
}

// Parent returns a view of the account ID with its leading part removed,
// reporting false for single-part account IDs. The view shares a's
// storage; call Owned on it to detach.
func (a AccountID) Parent() (Ref, bool) {
	return a.Ref().Parent()
}

// IsTopLevel reports whether the account ID is a top-level account.
func (a AccountID) IsTopLevel() bool {
	return a.Ref().IsTopLevel()
}

// IsSubAccountOf reports whether a is a direct sub-account of parent.
func (a AccountID) IsSubAccountOf(parent Ref) bool {
	return a.Ref().IsSubAccountOf(parent)
}

// IsSystem reports whether a is the reserved system account.
func (a AccountID) IsSystem() bool {
	return a.Ref().IsSystem()
}

// Equal reports whether two account IDs hold the same text. An AccountID
// and a Ref holding equal text compare equal through their views:
// a.Equal(b) iff a.Ref().Equal(b.Ref()).
func (a AccountID) Equal(other AccountID) bool {
	return a.id == other.id
}

// Compare returns -1, 0 or 1 ordering two account IDs lexicographically.
func (a AccountID) Compare(other AccountID) int {
	return strings.Compare(a.id, other.id)
}
