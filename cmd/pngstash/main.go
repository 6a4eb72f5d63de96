// Command pngstash hides, extracts, and removes text messages stored in
// custom PNG chunks.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/PngStash/core/stash"
	"github.com/FocuswithJustin/PngStash/internal/logging"
	"github.com/FocuswithJustin/PngStash/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for pngstash.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Encode  EncodeCmd  `cmd:"" help:"Hide a message in a PNG file"`
	Decode  DecodeCmd  `cmd:"" help:"Extract a hidden message from a PNG file"`
	Remove  RemoveCmd  `cmd:"" help:"Remove a hidden message chunk from a PNG file"`
	Print   PrintCmd   `cmd:"" help:"Print every chunk in a PNG file"`
	Verify  VerifyCmd  `cmd:"" help:"Verify the integrity of every chunk in a PNG file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// EncodeCmd hides a message in a PNG file.
type EncodeCmd struct {
	Path      string `arg:"" help:"Path to PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"4-letter chunk type tag (e.g. ruSt)"`
	Message   string `arg:"" help:"Message to hide"`
	Out       string `short:"o" help:"Output path (defaults to rewriting the input)" type:"path"`
}

func (c *EncodeCmd) Run() error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if c.Out != "" {
		if err := validation.ValidatePath(c.Out); err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
	}
	if err := validation.ValidateMessage(c.Message); err != nil {
		return err
	}

	if err := stash.Encode(c.Path, c.ChunkType, c.Message, c.Out); err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = c.Path
	}
	fmt.Printf("Message hidden in %s under chunk type %q\n", out, c.ChunkType)
	return nil
}

// DecodeCmd extracts a hidden message from a PNG file.
type DecodeCmd struct {
	Path      string `arg:"" help:"Path to PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"4-letter chunk type tag"`
}

func (c *DecodeCmd) Run() error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	message, err := stash.Decode(c.Path, c.ChunkType)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

// RemoveCmd removes a hidden message chunk from a PNG file.
type RemoveCmd struct {
	Path      string `arg:"" help:"Path to PNG file" type:"existingfile"`
	ChunkType string `arg:"" help:"4-letter chunk type tag"`
}

func (c *RemoveCmd) Run() error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	removed, err := stash.Remove(c.Path, c.ChunkType)
	if err != nil {
		return err
	}
	fmt.Printf("Removed chunk %s (%d bytes) from %s\n",
		removed.Type(), removed.Length(), c.Path)
	return nil
}

// PrintCmd prints every chunk in a PNG file.
type PrintCmd struct {
	Path string `arg:"" help:"Path to PNG file" type:"existingfile"`
}

func (c *PrintCmd) Run() error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	infos, err := stash.Inspect(c.Path)
	if err != nil {
		return err
	}

	fmt.Printf("Chunks in %s\n", c.Path)
	fmt.Println("--------------------------------")
	for i, info := range infos {
		fmt.Printf("%3d. %s  length=%d  crc=%d\n", i+1, info.Type, info.Length, info.CRC)
		fmt.Printf("     critical=%v public=%v reserved-bit-valid=%v safe-to-copy=%v\n",
			info.Critical, info.Public, info.ReservedBitValid, info.SafeToCopy)
		fmt.Printf("     blake3=%s\n", info.BLAKE3)
	}
	fmt.Printf("\nTotal: %d chunks\n", len(infos))
	return nil
}

// VerifyCmd verifies the integrity of every chunk in a PNG file.
type VerifyCmd struct {
	Path string `arg:"" help:"Path to PNG file" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	n, err := stash.Verify(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d chunks verified in %s\n", n, c.Path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("pngstash version %s\n", version)
	return nil
}

func initLogging() {
	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		level = logging.LevelWarn
	}
	format, err := logging.ParseFormat(CLI.LogFormat)
	if err != nil {
		format = logging.FormatText
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pngstash"),
		kong.Description("Hide, extract, and remove messages stored in PNG chunks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
