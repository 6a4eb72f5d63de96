// Package png implements the PNG container: the 8-byte file signature
// followed by an ordered sequence of chunks. It locates chunk boundaries
// and delegates all record-level validation to core/chunk.
package png

import (
	"bytes"
	"os"

	"github.com/FocuswithJustin/PngStash/core/chunk"
	"github.com/FocuswithJustin/PngStash/core/chunktype"
	"github.com/FocuswithJustin/PngStash/core/errors"
)

// Signature is the fixed 8-byte header every PNG file starts with.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is an in-memory PNG file: the standard signature plus an ordered
// chunk list. Chunk order is preserved exactly as parsed or appended.
type PNG struct {
	chunks []chunk.Chunk
}

// FromChunks builds a PNG from an ordered chunk list.
func FromChunks(chunks []chunk.Chunk) *PNG {
	return &PNG{chunks: chunks}
}

// Parse reads a complete PNG from raw bytes: signature check, then
// sequential chunk parsing until the buffer is exhausted. Any region that
// cannot form a complete valid chunk fails the whole parse.
func Parse(raw []byte) (*PNG, error) {
	if len(raw) < len(Signature) {
		return nil, errors.NewParse("PNG", "", "input too short for signature")
	}
	if !bytes.Equal(raw[:len(Signature)], Signature[:]) {
		return nil, errors.NewParse("PNG", "", "bad signature")
	}

	p := &PNG{}
	rest := raw[len(Signature):]
	offset := len(Signature)
	for len(rest) > 0 {
		c, err := chunk.Parse(rest)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk at offset %d", offset)
		}
		p.chunks = append(p.chunks, c)
		consumed := chunk.Overhead + len(c.Data())
		rest = rest[consumed:]
		offset += consumed
	}
	return p, nil
}

// Header returns the PNG signature.
func (p *PNG) Header() [8]byte {
	return Signature
}

// Chunks returns the ordered chunk list. Callers must not mutate it.
func (p *PNG) Chunks() []chunk.Chunk {
	return p.chunks
}

// AppendChunk adds a chunk to the end of the file.
func (p *PNG) AppendChunk(c chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type code matches tag.
func (p *PNG) ChunkByType(tag string) (chunk.Chunk, bool) {
	ct, err := chunktype.Parse(tag)
	if err != nil {
		return chunk.Chunk{}, false
	}
	for _, c := range p.chunks {
		if c.Type() == ct {
			return c, true
		}
	}
	return chunk.Chunk{}, false
}

// RemoveFirstChunk removes and returns the first chunk whose type code
// matches tag. A malformed tag or a tag with no matching chunk is a
// not-found error.
func (p *PNG) RemoveFirstChunk(tag string) (chunk.Chunk, error) {
	ct, err := chunktype.Parse(tag)
	if err != nil {
		return chunk.Chunk{}, err
	}
	for i, c := range p.chunks {
		if c.Type() == ct {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return chunk.Chunk{}, errors.NewNotFound("chunk", tag)
}

// Bytes serializes the file: signature followed by every chunk in order.
func (p *PNG) Bytes() []byte {
	size := len(Signature)
	for _, c := range p.chunks {
		size += chunk.Overhead + len(c.Data())
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Bytes()...)
	}
	return out
}

// Load reads and parses a PNG file from disk.
func Load(path string) (*PNG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return p, nil
}

// Save writes the serialized file to disk.
func (p *PNG) Save(path string) error {
	if err := os.WriteFile(path, p.Bytes(), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
