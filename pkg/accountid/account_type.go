package accountid

import "fmt"

// AccountType categorizes a valid account ID by its textual shape. The
// categories are mutually exclusive: every valid ID maps to exactly one.
// Classification is never stored; it is recomputed on demand from the
// text, which is bounded by MaxLen.
type AccountType uint8

const (
	// NamedAccount is any valid, human-chosen account ID that does not
	// match one of the implicit shapes below.
	NamedAccount AccountType = iota

	// NearImplicitAccount is 64 lowercase hex characters encoding an
	// ed25519 public key.
	NearImplicitAccount

	// EthImplicitAccount is "0x" followed by 40 lowercase hex characters
	// encoding an Ethereum address.
	EthImplicitAccount

	// NearDeterministicAccount is "0s" followed by 40 lowercase hex
	// characters encoding a derivation output.
	NearDeterministicAccount
)

// IsImplicit reports whether the account's text encodes key or derivation
// material rather than a human-chosen name.
func (t AccountType) IsImplicit() bool {
	return t != NamedAccount
}

// String returns the type's name.
func (t AccountType) String() string {
	switch t {
	case NamedAccount:
		return "named"
	case NearImplicitAccount:
		return "near-implicit"
	case EthImplicitAccount:
		return "eth-implicit"
	case NearDeterministicAccount:
		return "near-deterministic"
	default:
		return fmt.Sprintf("AccountType(%d)", uint8(t))
	}
}
