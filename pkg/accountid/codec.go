package accountid

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEnc encodes with Core Deterministic Encoding (RFC 8949 §4.2):
// the same account ID always produces identical bytes, which matters when
// identifiers feed storage keys or signatures.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("accountid: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("accountid: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalText implements encoding.TextMarshaler. Account IDs serialize as
// their exact text in every text-based format (JSON, YAML, query params);
// no escaping or transformation is applied.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, which also drives
// encoding/json for string values. The decoded text is re-validated; use
// NewTrustedDecoder to skip that at an explicit trust boundary.
func (a *AccountID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// MarshalCBOR implements cbor.Marshaler. The account ID is encoded as a
// CBOR text string holding exactly its text.
func (a AccountID) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(a.id)
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded text is
// re-validated, mirroring UnmarshalText.
func (a *AccountID) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cborDec.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("malformed account ID encoding: %w", err)
	}
	id, err := Parse(s)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// Decoder decodes account IDs from their wire encodings. The zero value
// (and NewDecoder) re-runs validation on every decoded string, which is
// the default every caller should want.
//
// A trusted decoder skips validation entirely, both the grammar and the
// length bounds. That makes decode a byte-for-byte passthrough for data
// the caller already trusts, such as identifiers read back from storage
// that were validated when written. It is a trust boundary, not a
// default: constructing one is the reviewable opt-in.
type Decoder struct {
	trusted bool
}

// NewDecoder returns a decoder that validates everything it decodes.
func NewDecoder() Decoder {
	return Decoder{}
}

// NewTrustedDecoder returns a decoder that skips account ID validation.
// The caller assumes responsibility for the invariant of every decoded
// value.
func NewTrustedDecoder() Decoder {
	return Decoder{trusted: true}
}

// DecodeJSON decodes a JSON string into an AccountID.
func (d Decoder) DecodeJSON(data []byte) (AccountID, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return AccountID{}, fmt.Errorf("malformed account ID encoding: %w", err)
	}
	return d.finish(s)
}

// DecodeCBOR decodes a CBOR text string into an AccountID.
func (d Decoder) DecodeCBOR(data []byte) (AccountID, error) {
	var s string
	if err := cborDec.Unmarshal(data, &s); err != nil {
		return AccountID{}, fmt.Errorf("malformed account ID encoding: %w", err)
	}
	return d.finish(s)
}

func (d Decoder) finish(s string) (AccountID, error) {
	if d.trusted {
		return NewUnchecked(s), nil
	}
	return Parse(s)
}
