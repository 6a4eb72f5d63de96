// Package stash hides, extracts, and removes text messages stored in
// custom PNG chunks. It is a thin orchestrator over core/png and core/chunk:
// all byte-level validation lives in the codec, all file handling here.
package stash

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/PngStash/core/chunk"
	"github.com/FocuswithJustin/PngStash/core/chunktype"
	"github.com/FocuswithJustin/PngStash/core/errors"
	"github.com/FocuswithJustin/PngStash/core/png"
	"github.com/FocuswithJustin/PngStash/internal/logging"
)

// Encode appends a chunk holding message under the given type tag and writes
// the result to outPath. An empty outPath rewrites inPath in place.
func Encode(inPath, tag, message, outPath string) error {
	ct, err := chunktype.Parse(tag)
	if err != nil {
		return err
	}

	p, err := png.Load(inPath)
	if err != nil {
		return err
	}

	p.AppendChunk(chunk.New(ct, []byte(message)))

	if outPath == "" {
		outPath = inPath
	}
	if err := p.Save(outPath); err != nil {
		return err
	}

	logging.Info("message encoded",
		"path", outPath,
		"type", tag,
		"bytes", len(message))
	return nil
}

// Decode extracts the message stored under the given type tag. The first
// matching chunk wins; its data must be valid UTF-8.
func Decode(inPath, tag string) (string, error) {
	if _, err := chunktype.Parse(tag); err != nil {
		return "", err
	}

	p, err := png.Load(inPath)
	if err != nil {
		return "", err
	}

	c, ok := p.ChunkByType(tag)
	if !ok {
		return "", errors.NewNotFound("chunk", tag)
	}

	message, err := c.DataAsString()
	if err != nil {
		return "", err
	}

	logging.Debug("message decoded", "path", inPath, "type", tag, "bytes", len(message))
	return message, nil
}

// Remove strips the first chunk with the given type tag and rewrites the
// file in place. The removed chunk is returned.
func Remove(inPath, tag string) (chunk.Chunk, error) {
	p, err := png.Load(inPath)
	if err != nil {
		return chunk.Chunk{}, err
	}

	removed, err := p.RemoveFirstChunk(tag)
	if err != nil {
		return chunk.Chunk{}, err
	}

	if err := p.Save(inPath); err != nil {
		return chunk.Chunk{}, err
	}

	logging.Info("chunk removed", "path", inPath, "type", tag)
	return removed, nil
}

// ChunkInfo is a per-chunk diagnostic report.
type ChunkInfo struct {
	Type             string
	Length           uint32
	CRC              uint32
	Critical         bool
	Public           bool
	ReservedBitValid bool
	SafeToCopy       bool
	BLAKE3           string
}

// Inspect parses the file and reports every chunk: type code, length, crc,
// property bits, and a BLAKE3 fingerprint of the data.
func Inspect(inPath string) ([]ChunkInfo, error) {
	p, err := png.Load(inPath)
	if err != nil {
		return nil, err
	}

	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		ct := c.Type()
		infos = append(infos, ChunkInfo{
			Type:             ct.String(),
			Length:           c.Length(),
			CRC:              c.CRC(),
			Critical:         ct.IsCritical(),
			Public:           ct.IsPublic(),
			ReservedBitValid: ct.IsReservedBitValid(),
			SafeToCopy:       ct.IsSafeToCopy(),
			BLAKE3:           Fingerprint(c.Data()),
		})
	}
	return infos, nil
}

// Verify re-parses the file, which re-validates the structure and checksum
// of every chunk. It returns the chunk count on success.
func Verify(inPath string) (int, error) {
	p, err := png.Load(inPath)
	if err != nil {
		return 0, err
	}
	logging.Debug("file verified", "path", inPath, "chunks", len(p.Chunks()))
	return len(p.Chunks()), nil
}

// Fingerprint returns the hex BLAKE3-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
