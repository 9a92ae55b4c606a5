// Copyright 2026 The Multicoin Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

func UvarintBinarySize(v uint64) int {
	return len(UvarintMarshalBinary(v))
}

func UvarintMarshalBinary(v uint64) []byte {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, v)
	return b[:n]
}

func UvarintUnmarshalBinary(b []byte) (uint64, error) {
	v, n := binary.Uvarint(b)
	if n == 0 {
		return 0, ErrNotEnoughData
	}
	if n < 0 {
		return 0, ErrOverflow
	}
	return v, nil
}

func BytesBinarySize(v []byte) int {
	return UvarintBinarySize(uint64(len(v))) + len(v)
}

func BytesMarshalBinary(v []byte) []byte {
	return append(UvarintMarshalBinary(uint64(len(v))), v...)
}

func BytesUnmarshalBinary(b []byte) ([]byte, error) {
	l, err := UvarintUnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("error decoding length: %w", err)
	}
	b = b[UvarintBinarySize(l):]
	if len(b) < int(l) {
		return nil, ErrNotEnoughData
	}
	v := make([]byte, l)
	copy(v, b)
	return v, nil
}

func StringBinarySize(s string) int {
	return BytesBinarySize([]byte(s))
}

func StringMarshalBinary(s string) []byte {
	return BytesMarshalBinary([]byte(s))
}

func StringUnmarshalBinary(b []byte) (string, error) {
	v, err := BytesUnmarshalBinary(b)
	if err != nil {
		return "", fmt.Errorf("error decoding string: %w", err)
	}
	return string(v), nil
}

func BigintBinarySize(v *big.Int) int {
	if v == nil {
		return BytesBinarySize(nil)
	}
	return BytesBinarySize(v.Bytes())
}

// BigintMarshalBinary encodes the absolute value of v. A nil bigint encodes
// as zero.
func BigintMarshalBinary(v *big.Int) []byte {
	if v == nil {
		return BytesMarshalBinary(nil)
	}
	return BytesMarshalBinary(v.Bytes())
}

func BigintUnmarshalBinary(b []byte) (*big.Int, error) {
	v, err := BytesUnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("error decoding bigint: %w", err)
	}
	return new(big.Int).SetBytes(v), nil
}

func BoolBinarySize(_ bool) int {
	return 1
}

func BoolMarshalBinary(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func BoolUnmarshalBinary(b []byte) (bool, error) {
	if len(b) == 0 {
		return false, ErrNotEnoughData
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%d is not a valid boolean", b[0])
	}
}
