// Package chunktype implements the 4-byte PNG chunk type code.
// Each byte must be an ASCII letter; the case bit (bit 5) of each position
// carries a property flag as defined by the PNG 1.2 structure spec.
package chunktype

import (
	"fmt"

	"github.com/FocuswithJustin/PngStash/core/errors"
)

// BadByteError reports a chunk type byte outside the ASCII letter range.
type BadByteError struct {
	Byte byte
}

func (e *BadByteError) Error() string {
	return fmt.Sprintf("chunk type: bad byte %d", e.Byte)
}

func (e *BadByteError) Unwrap() error {
	return errors.ErrInvalidInput
}

// BadLengthError reports a chunk type string that is not exactly 4 bytes long.
type BadLengthError struct {
	Value  string
	Length int
}

func (e *BadLengthError) Error() string {
	return fmt.Sprintf("chunk type: bad length for %q is %d", e.Value, e.Length)
}

func (e *BadLengthError) Unwrap() error {
	return errors.ErrInvalidInput
}

// ChunkType is an immutable 4-byte chunk type code. The zero value is not a
// usable type code; construct one with FromBytes or Parse. ChunkType values
// are comparable with ==.
type ChunkType struct {
	data [4]byte
}

// FromBytes constructs a ChunkType from 4 raw bytes. Every byte must be an
// ASCII letter; the first offending byte is reported via BadByteError.
func FromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !validByte(c) {
			return ChunkType{}, &BadByteError{Byte: c}
		}
	}
	return ChunkType{data: b}, nil
}

// Parse constructs a ChunkType from a string. The string must be exactly
// 4 bytes long (counted in bytes, not runes) and every byte must be an
// ASCII letter.
func Parse(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &BadLengthError{Value: s, Length: len(s)}
	}

	var ct ChunkType
	for i := 0; i < 4; i++ {
		b := s[i]
		if !validByte(b) {
			return ChunkType{}, &BadByteError{Byte: b}
		}
		ct.data[i] = b
	}
	return ct, nil
}

// Bytes returns the 4 raw bytes of the type code, case preserved.
func (ct ChunkType) Bytes() [4]byte {
	return ct.data
}

// IsCritical reports whether the chunk is critical (first byte uppercase).
func (ct ChunkType) IsCritical() bool {
	return bitIsZero(ct.data[0], 5)
}

// IsPublic reports whether the chunk type is public (second byte uppercase).
func (ct ChunkType) IsPublic() bool {
	return bitIsZero(ct.data[1], 5)
}

// IsReservedBitValid reports whether the reserved bit conforms to the spec
// (third byte uppercase).
func (ct ChunkType) IsReservedBitValid() bool {
	return bitIsZero(ct.data[2], 5)
}

// IsSafeToCopy reports whether the chunk is safe to copy (fourth byte
// lowercase). Note the polarity: unlike the other three flags, the lowercase
// form is the affirmative one.
func (ct ChunkType) IsSafeToCopy() bool {
	return !bitIsZero(ct.data[3], 5)
}

// IsValid reports whether the type code is fully spec-conformant: all bytes
// ASCII letters and the reserved bit valid. A ChunkType can be constructed
// successfully and still be invalid here; callers that accept raw bytes from
// untrusted sources use this for strict checking.
func (ct ChunkType) IsValid() bool {
	return ct.IsReservedBitValid() &&
		validByte(ct.data[0]) &&
		validByte(ct.data[1]) &&
		validByte(ct.data[2]) &&
		validByte(ct.data[3])
}

// String renders the 4 bytes as their ASCII characters.
func (ct ChunkType) String() string {
	return string(ct.data[:])
}

func validByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// bitIsZero reports whether bit n of b is zero. Bit 5 is the ASCII case bit:
// zero for uppercase, one for lowercase.
func bitIsZero(b byte, n uint) bool {
	return b&(1<<n) == 0
}
