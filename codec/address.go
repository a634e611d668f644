package codec

import (
	"strings"

	plasmacommon "github.com/0xPolygon/plasma-mst/common"
	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the fixed wire width of an Ethereum-style address.
const AddressLength = 20

// AddressCodec encodes/decodes a 20-byte Ethereum address. The decoded form
// is the canonical 0x-prefixed lowercase hex string; Encode accepts an
// address as a hex string.
type AddressCodec struct {
	FieldName string
}

// NewAddressCodec builds an AddressCodec for the named field.
func NewAddressCodec(field string) AddressCodec {
	return AddressCodec{FieldName: field}
}

// Encode serializes an address (given as a hex string) into 20 raw bytes.
func (c AddressCodec) Encode(hexAddr string) ([]byte, error) {
	if err := c.Validate(hexAddr); err != nil {
		return nil, err
	}
	addr := common.HexToAddress(hexAddr)
	out := make([]byte, AddressLength)
	copy(out, addr.Bytes())
	return out, nil
}

// Decode consumes AddressLength bytes from b and returns the canonical
// 0x-prefixed lowercase hex string plus the number of bytes consumed.
func (c AddressCodec) Decode(b []byte) (string, int, error) {
	if len(b) < AddressLength {
		return "", 0, NewDecodeError(c.FieldName, "short buffer for address")
	}
	addr := common.BytesToAddress(b[:AddressLength])
	return strings.ToLower(addr.Hex()), AddressLength, nil
}

// Validate checks that hexAddr is a well-formed Ethereum address: correct
// hex length, and, if it carries mixed-case letters, a valid EIP-55
// checksum.
func (c AddressCodec) Validate(hexAddr string) error {
	if !common.IsHexAddress(hexAddr) {
		return NewValidationError(c.FieldName, KindInvalidAddress)
	}
	body := plasmacommon.TrimHexPrefix(hexAddr)
	if hasMixedCase(body) {
		checksummed := common.HexToAddress(hexAddr).Hex()
		if body != plasmacommon.TrimHexPrefix(checksummed) {
			return NewValidationError(c.FieldName, KindInvalidAddress)
		}
	}
	return nil
}

// Cast normalizes an address input to lowercase, without checksum
// validation.
func Cast(hexAddr string) string {
	return strings.ToLower(hexAddr)
}

func hasMixedCase(s string) bool {
	hasUpper, hasLower := false, false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasUpper && hasLower
}
