package transaction

import (
	"math/big"

	"github.com/0xPolygon/plasma-mst/codec"
	"github.com/0xPolygon/plasma-mst/constants"
)

// Transfer asserts that coin IDs [Start, End) moved from Sender to
// Recipient under the given Token. Addresses are canonical 0x-prefixed
// lowercase hex strings.
type Transfer struct {
	Sender    string
	Recipient string
	Token     *big.Int
	Start     *big.Int
	End       *big.Int
}

var (
	senderCodec    = codec.NewAddressCodec("transfer.sender")
	recipientCodec = codec.NewAddressCodec("transfer.recipient")
	tokenCodec     = codec.NewUintCodec("transfer.token", constants.TokenLength)
	startCodec     = codec.NewUintCodec("transfer.start", constants.CoinIDLength)
	endCodec       = codec.NewUintCodec("transfer.end", constants.CoinIDLength)
)

// EncodedLength is the fixed wire size of an encoded Transfer.
const EncodedLength = codec.AddressLength*2 + constants.TokenLength + constants.CoinIDLength*2

// Validate checks field well-formedness and the invariants from §3:
// Start < End, and both lie within [MinCoinID, MaxCoinID].
func (t Transfer) Validate() error {
	if err := senderCodec.Validate(t.Sender); err != nil {
		return err
	}
	if err := recipientCodec.Validate(t.Recipient); err != nil {
		return err
	}
	if t.Start == nil || t.End == nil {
		return codec.NewValidationError("transfer.start", codec.KindOutOfRange)
	}
	if t.Start.Cmp(t.End) >= 0 {
		return codec.NewValidationError("transfer.start", codec.KindInvalidRange)
	}
	if t.Start.Cmp(constants.MinCoinID) < 0 || t.End.Cmp(constants.MaxCoinID) > 0 {
		return codec.NewValidationError("transfer.start", codec.KindOutOfRange)
	}
	return nil
}

// Encode serializes the transfer in field order: sender, recipient,
// token, start, end.
func (t Transfer) Encode() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	sender, err := senderCodec.Encode(t.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := recipientCodec.Encode(t.Recipient)
	if err != nil {
		return nil, err
	}
	token, err := tokenCodec.Encode(t.Token)
	if err != nil {
		return nil, err
	}
	start, err := startCodec.Encode(t.Start)
	if err != nil {
		return nil, err
	}
	end, err := endCodec.Encode(t.End)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, EncodedLength)
	out = append(out, sender...)
	out = append(out, recipient...)
	out = append(out, token...)
	out = append(out, start...)
	out = append(out, end...)
	return out, nil
}

// DecodeTransfer consumes one Transfer's worth of bytes from b and returns
// it along with the number of bytes consumed.
func DecodeTransfer(b []byte) (Transfer, int, error) {
	if len(b) < EncodedLength {
		return Transfer{}, 0, codec.NewDecodeError("transfer", "short buffer")
	}
	offset := 0

	sender, n, err := senderCodec.Decode(b[offset:])
	if err != nil {
		return Transfer{}, 0, err
	}
	offset += n

	recipient, n, err := recipientCodec.Decode(b[offset:])
	if err != nil {
		return Transfer{}, 0, err
	}
	offset += n

	token, n, err := tokenCodec.Decode(b[offset:])
	if err != nil {
		return Transfer{}, 0, err
	}
	offset += n

	start, n, err := startCodec.Decode(b[offset:])
	if err != nil {
		return Transfer{}, 0, err
	}
	offset += n

	end, n, err := endCodec.Decode(b[offset:])
	if err != nil {
		return Transfer{}, 0, err
	}
	offset += n

	transfer := Transfer{
		Sender:    sender,
		Recipient: recipient,
		Token:     token,
		Start:     start,
		End:       end,
	}
	return transfer, offset, nil
}
