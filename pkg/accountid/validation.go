package accountid

// Account ID length bounds, chosen for storage-key efficiency.
const (
	// MinLen is the shortest valid length for a NEAR account ID.
	MinLen = 2

	// MaxLen is the longest valid length for a NEAR account ID.
	MaxLen = 64
)

// Validate checks that s is a well-structured NEAR account ID without
// constructing an AccountID. It returns nil on success and a *ParseError
// describing the first violation otherwise.
//
// The scan is a single linear pass over the bytes. The valid grammar is
// equivalent to /^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$/,
// but tracking whether the previous character was a separator is both
// faster and gives precise offsets. The length check short-circuits before
// the scan, so the worst-case work on oversized input is O(1).
func Validate(s string) error {
	if len(s) < MinLen {
		return &ParseError{Kind: KindTooShort, Index: -1}
	}
	if len(s) > MaxLen {
		return &ParseError{Kind: KindTooLong, Index: -1}
	}

	// The imaginary character before the first one counts as a separator,
	// which rejects a leading separator with no special casing.
	lastSeparator := true

	for i := 0; i < len(s); i++ {
		c := s[i]
		var separator bool
		switch {
		case 'a' <= c && c <= 'z' || '0' <= c && c <= '9':
			separator = false
		case c == '-' || c == '_' || c == '.':
			separator = true
		default:
			return &ParseError{Kind: KindInvalidChar, Index: i, Char: c}
		}
		if separator && lastSeparator {
			return &ParseError{Kind: KindRedundantSeparator, Index: i, Char: c}
		}
		lastSeparator = separator
	}

	if lastSeparator {
		return &ParseError{Kind: KindRedundantSeparator, Index: len(s) - 1, Char: s[len(s)-1]}
	}
	return nil
}

// isLowerHex reports whether every byte of s is a lowercase hex digit.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// isEthImplicit reports whether s is "0x" followed by 40 lowercase hex
// characters: the shape of an account derived from an Ethereum address.
func isEthImplicit(s string) bool {
	return len(s) == 42 && s[0] == '0' && s[1] == 'x' && isLowerHex(s[2:])
}

// isNearDeterministic reports whether s is "0s" followed by 40 lowercase
// hex characters: the shape of a deterministically derived account.
func isNearDeterministic(s string) bool {
	return len(s) == 42 && s[0] == '0' && s[1] == 's' && isLowerHex(s[2:])
}

// isNearImplicit reports whether s is 64 lowercase hex characters: the
// shape of an account whose text is an ed25519 public key.
func isNearImplicit(s string) bool {
	return len(s) == 64 && isLowerHex(s)
}
