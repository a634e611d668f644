package codec

import (
	"math/big"

	plasmacommon "github.com/0xPolygon/plasma-mst/common"
)

// UintCodec encodes/decodes an unsigned integer of a fixed byte width,
// big-endian on the wire. Width is chosen per field: 4 for block numbers
// and indices, 12 or 16 for coin IDs, 32 for amounts.
type UintCodec struct {
	FieldName string
	Width     int
}

// NewUintCodec builds a UintCodec for the named field with the given
// byte width.
func NewUintCodec(field string, width int) UintCodec {
	return UintCodec{FieldName: field, Width: width}
}

// Encode serializes v as a Width-byte big-endian value. It fails if v is
// negative or does not fit in Width bytes.
func (c UintCodec) Encode(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, NewValidationError(c.FieldName, KindOutOfRange)
	}
	b := v.Bytes()
	if len(b) > c.Width {
		return nil, NewValidationError(c.FieldName, KindOutOfRange)
	}
	return plasmacommon.PadBigEndian(b, c.Width), nil
}

// Decode consumes Width bytes from b and returns the resulting integer
// plus the number of bytes consumed.
func (c UintCodec) Decode(b []byte) (*big.Int, int, error) {
	if len(b) < c.Width {
		return nil, 0, NewDecodeError(c.FieldName, "short buffer for uint field")
	}
	return new(big.Int).SetBytes(b[:c.Width]), c.Width, nil
}

// MaxValue returns the largest value representable in Width bytes.
func (c UintCodec) MaxValue() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(c.Width)*8) //nolint:gomnd
	return max.Sub(max, big.NewInt(1))
}
