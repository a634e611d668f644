package codec

import "math/big"

func bigFromInt(v int) *big.Int {
	return big.NewInt(int64(v))
}

// ListCodec encodes/decodes a variable-length list of T, prepended by a
// count field of CountWidth bytes (List<T, countField> in the schema
// vocabulary). ElemEncode/ElemDecode serialize a single element.
type ListCodec[T any] struct {
	FieldName  string
	CountWidth int
	ElemEncode func(T) ([]byte, error)
	ElemDecode func([]byte) (T, int, error)
}

// NewListCodec builds a ListCodec for the named field.
func NewListCodec[T any](field string, countWidth int,
	elemEncode func(T) ([]byte, error), elemDecode func([]byte) (T, int, error)) ListCodec[T] {
	return ListCodec[T]{
		FieldName:  field,
		CountWidth: countWidth,
		ElemEncode: elemEncode,
		ElemDecode: elemDecode,
	}
}

// Encode serializes the count followed by each element in order.
func (c ListCodec[T]) Encode(items []T) ([]byte, error) {
	countCodec := NewUintCodec(c.FieldName+".count", c.CountWidth)
	countBytes, err := countCodec.Encode(bigFromInt(len(items)))
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, countBytes...)
	for _, item := range items {
		b, err := c.ElemEncode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Decode consumes a count field followed by that many elements.
func (c ListCodec[T]) Decode(b []byte) ([]T, int, error) {
	countCodec := NewUintCodec(c.FieldName+".count", c.CountWidth)
	countVal, consumed, err := countCodec.Decode(b)
	if err != nil {
		return nil, 0, err
	}
	count := int(countVal.Int64())
	if count < 0 {
		return nil, 0, NewDecodeError(c.FieldName, "negative count")
	}

	items := make([]T, 0, count)
	offset := consumed
	for i := 0; i < count; i++ {
		item, n, err := c.ElemDecode(b[offset:])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
		offset += n
	}
	return items, offset, nil
}
