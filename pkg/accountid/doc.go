// Package accountid provides a type for representing a syntactically valid,
// unique account identifier on the NEAR network.
//
// # Account ID Rules
//
//   - Minimum length is 2, maximum length is 64.
//   - An account ID consists of parts separated by '.', e.g. "root",
//     "alice.near", "app.stage.testnet".
//   - Each part consists of lowercase alphanumeric symbols, optionally
//     separated by '_' or '-', e.g. "1_4m_n0t-al1c3.near".
//   - An account ID must not start or end with a separator ('_', '-' or
//     '.'), and separators must not immediately follow each other:
//     "alice..near" and "not-_alice.near" are both invalid.
//   - An account ID of a specific fixed shape may additionally be an
//     implicit account, whose text encodes a public key or derivation
//     output rather than a human-chosen name. See AccountType.
//
// The package exposes two types connected by a one-directional borrow:
// AccountID owns its text, Ref is a non-owning view over text that lives
// elsewhere (a parse buffer, a larger identifier). Every construction path
// of the safe API funnels through Validate, so a value of either type is
// guaranteed to satisfy the rules above for its entire lifetime.
//
// Construction that bypasses validation is available through the
// explicitly named NewUnchecked, RefUnchecked and NewTrustedDecoder entry
// points. These exist for call sites that have already validated the text
// elsewhere and are deliberately easy to enumerate in review.
package accountid
