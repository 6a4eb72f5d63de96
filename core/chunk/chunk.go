// Package chunk implements the PNG chunk record: a length-prefixed,
// type-tagged, CRC-protected binary record as defined by the PNG 1.2
// structure spec. Construction computes the checksum; parsing verifies it
// and never returns a partially-built chunk.
package chunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/FocuswithJustin/PngStash/core/chunktype"
	pserrors "github.com/FocuswithJustin/PngStash/core/errors"
)

// Overhead is the fixed byte cost of a chunk beyond its data: 4-byte length,
// 4-byte type code, 4-byte CRC.
const Overhead = 12

// Sentinel errors for parse and accessor failures.
var (
	// ErrInvalidCRC indicates the stored CRC does not match the checksum
	// recomputed over the type code and data.
	ErrInvalidCRC = errors.New("chunk: invalid crc")
	// ErrLengthOverflow indicates a declared length beyond the 32-bit range.
	// Unreachable while the length field is itself 32 bits; kept as a guard.
	ErrLengthOverflow = errors.New("chunk: length exceeds 32-bit range")
	// ErrNotText indicates chunk data that is not valid UTF-8.
	ErrNotText = errors.New("chunk: data is not valid UTF-8")
)

// ReadError reports a truncated read while parsing a chunk section.
type ReadError struct {
	Section string // section being read: "length", "chunk type", "data", "crc"
	Err     error  // underlying read failure
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("chunk: reading %s: %v", e.Section, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// InvalidTypeError forwards a chunk type construction failure from parsing.
type InvalidTypeError struct {
	Err error
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("chunk: invalid chunk type: %v", e.Err)
}

func (e *InvalidTypeError) Unwrap() error {
	return e.Err
}

// DataLengthError reports data whose read length does not match the declared
// length field. Step 4 of the parse pipeline reads exactly the declared count,
// so this is a defensive cross-check.
type DataLengthError struct {
	Got  int
	Want int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("chunk: data is %d bytes, declared length is %d", e.Got, e.Want)
}

func (e *DataLengthError) Unwrap() error {
	return pserrors.ErrCorrupt
}

// Chunk is a complete PNG chunk record. The length field always equals the
// data length and the crc field always covers the type code followed by the
// data. Chunks are immutable once constructed; changing the payload means
// building a new Chunk.
type Chunk struct {
	length    uint32
	chunkType chunktype.ChunkType
	data      []byte
	crc       uint32
}

// New builds a chunk from a type code and a data buffer, computing the
// length and CRC. It cannot fail; a data buffer longer than the 32-bit range
// is a caller precondition violation.
func New(ct chunktype.ChunkType, data []byte) Chunk {
	return Chunk{
		length:    uint32(len(data)),
		chunkType: ct,
		data:      data,
		crc:       Checksum(ct, data),
	}
}

// Checksum computes the CRC-32 (ISO-HDLC, the IEEE table) over the type code
// bytes followed by the data. This is the checksum variant the PNG wire
// format requires; any other CRC-32 table breaks interoperability.
func Checksum(ct chunktype.ChunkType, data []byte) uint32 {
	tb := ct.Bytes()
	h := crc32.NewIEEE()
	h.Write(tb[:])
	h.Write(data)
	return h.Sum32()
}

// Parse reads a chunk from the front of raw, validating structure and
// checksum. Trailing bytes beyond the chunk are ignored; container framing
// is the caller's concern. On any failure no chunk is returned.
func Parse(raw []byte) (Chunk, error) {
	r := bytes.NewReader(raw)
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Chunk{}, &ReadError{Section: "length", Err: err}
	}
	length := binary.BigEndian.Uint32(buf[:])
	if uint64(length) > math.MaxUint32 {
		return Chunk{}, ErrLengthOverflow
	}

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Chunk{}, &ReadError{Section: "chunk type", Err: err}
	}
	ct, err := chunktype.FromBytes(buf)
	if err != nil {
		return Chunk{}, &InvalidTypeError{Err: err}
	}

	data := make([]byte, length)
	n, err := io.ReadFull(r, data)
	if err != nil {
		return Chunk{}, &ReadError{Section: "data", Err: err}
	}
	if n != int(length) {
		return Chunk{}, &DataLengthError{Got: n, Want: int(length)}
	}

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Chunk{}, &ReadError{Section: "crc", Err: err}
	}
	provided := binary.BigEndian.Uint32(buf[:])
	if Checksum(ct, data) != provided {
		return Chunk{}, ErrInvalidCRC
	}

	return Chunk{
		length:    length,
		chunkType: ct,
		data:      data,
		crc:       provided,
	}, nil
}

// Bytes serializes the chunk: big-endian length, type code bytes, data,
// big-endian CRC. Output is always Overhead+len(data) bytes.
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, Overhead+len(c.data))
	out = binary.BigEndian.AppendUint32(out, c.length)
	tb := c.chunkType.Bytes()
	out = append(out, tb[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

// Length returns the byte length of the chunk data.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c Chunk) Type() chunktype.ChunkType {
	return c.chunkType
}

// Data returns the raw chunk data. Callers must not mutate it.
func (c Chunk) Data() []byte {
	return c.data
}

// DataAsString returns the chunk data as text. Fails with ErrNotText when
// the data is not valid UTF-8; this is the only accessor that can fail.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrNotText
	}
	return string(c.data), nil
}

// CRC returns the chunk's checksum.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// String renders a multi-line diagnostic summary. Data content is not
// printed, only its byte count.
func (c Chunk) String() string {
	var b strings.Builder
	b.WriteString("Chunk {\n")
	fmt.Fprintf(&b, "  Length: %d\n", c.length)
	fmt.Fprintf(&b, "  Type: %s\n", c.chunkType)
	fmt.Fprintf(&b, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&b, "  Crc: %d\n", c.crc)
	b.WriteString("}\n")
	return b.String()
}
