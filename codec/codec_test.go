package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressCodecRoundTrip(t *testing.T) {
	t.Parallel()
	c := NewAddressCodec("sender")

	encoded, err := c.Encode("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	require.Len(t, encoded, AddressLength)

	decoded, n, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, AddressLength, n)
	require.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", decoded)
}

func TestAddressCodecValidation(t *testing.T) {
	t.Parallel()
	c := NewAddressCodec("sender")

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{name: "valid lowercase", addr: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "too short", addr: "0xaaaa", wantErr: true},
		{name: "not hex", addr: "0xzzzzaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: true},
		{name: "bad checksum", addr: "0xAaAaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaA", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := c.Validate(tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, KindInvalidAddress, ve.Kind)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUintCodecRoundTrip(t *testing.T) {
	t.Parallel()
	c := NewUintCodec("token", 4)

	encoded, err := c.Encode(big.NewInt(258))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, encoded)

	decoded, n, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, big.NewInt(258), decoded)
}

func TestUintCodecOutOfRange(t *testing.T) {
	t.Parallel()
	c := NewUintCodec("token", 1)
	_, err := c.Encode(big.NewInt(256))
	require.Error(t, err)

	_, err = c.Encode(big.NewInt(-1))
	require.Error(t, err)
}

func TestUintCodecShortBuffer(t *testing.T) {
	t.Parallel()
	c := NewUintCodec("token", 4)
	_, _, err := c.Decode([]byte{0x01, 0x02})
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestBytesCodecRoundTrip(t *testing.T) {
	t.Parallel()
	c := NewBytesCodec("digest", 32)
	value := make([]byte, 32)
	value[0] = 0xff

	encoded, err := c.Encode(value)
	require.NoError(t, err)

	decoded, n, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.Equal(t, value, decoded)
}

func TestBytesCodecWrongWidth(t *testing.T) {
	t.Parallel()
	c := NewBytesCodec("digest", 32)
	_, err := c.Encode(make([]byte, 16))
	require.Error(t, err)
}

func TestListCodecRoundTrip(t *testing.T) {
	t.Parallel()
	elemCodec := NewUintCodec("elem", 2)
	list := NewListCodec[*big.Int]("items", 4, elemCodec.Encode, elemCodec.Decode)

	items := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	encoded, err := list.Encode(items)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 3, 0, 1, 0, 2, 0, 3}, encoded)

	decoded, n, err := list.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, items, decoded)
}

func TestListCodecEmpty(t *testing.T) {
	t.Parallel()
	elemCodec := NewUintCodec("elem", 2)
	list := NewListCodec[*big.Int]("items", 4, elemCodec.Encode, elemCodec.Decode)

	encoded, err := list.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, encoded)

	decoded, n, err := list.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Empty(t, decoded)
}
