package chunktype

import (
	"errors"
	"testing"

	pserrors "github.com/FocuswithJustin/PngStash/core/errors"
)

func TestFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	ct, err := FromBytes(expected)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if ct.Bytes() != expected {
		t.Errorf("Bytes() = %v, want %v", ct.Bytes(), expected)
	}
}

func TestFromBytesRejectsNonLetters(t *testing.T) {
	tests := []struct {
		name    string
		input   [4]byte
		wantBad byte
	}{
		{name: "digit", input: [4]byte{'R', 'u', '1', 't'}, wantBad: '1'},
		{name: "space", input: [4]byte{'R', ' ', 'S', 't'}, wantBad: ' '},
		{name: "punctuation", input: [4]byte{'!', 'u', 'S', 't'}, wantBad: '!'},
		{name: "high byte", input: [4]byte{'R', 'u', 'S', 0xFF}, wantBad: 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var badByte *BadByteError
			if !errors.As(err, &badByte) {
				t.Fatalf("expected BadByteError, got %T", err)
			}
			if badByte.Byte != tt.wantBad {
				t.Errorf("reported byte = %d, want %d", badByte.Byte, tt.wantBad)
			}
			if !errors.Is(err, pserrors.ErrInvalidInput) {
				t.Error("error should unwrap to ErrInvalidInput")
			}
		})
	}
}

func TestParse(t *testing.T) {
	expected, err := FromBytes([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	actual, err := Parse("RuSt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if actual != expected {
		t.Errorf("Parse(%q) = %v, want %v", "RuSt", actual, expected)
	}
}

func TestParseRejectsBadLength(t *testing.T) {
	for _, s := range []string{"", "RuS", "RuSty"} {
		_, err := Parse(s)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", s)
		}
		var badLen *BadLengthError
		if !errors.As(err, &badLen) {
			t.Fatalf("Parse(%q): expected BadLengthError, got %T", s, err)
		}
		if badLen.Value != s || badLen.Length != len(s) {
			t.Errorf("Parse(%q): reported (%q, %d)", s, badLen.Value, badLen.Length)
		}
	}
}

func TestParseRejectsBadByte(t *testing.T) {
	_, err := Parse("Ru1t")
	if err == nil {
		t.Fatal("Parse(\"Ru1t\") should fail")
	}
	var badByte *BadByteError
	if !errors.As(err, &badByte) {
		t.Fatalf("expected BadByteError, got %T", err)
	}
	if badByte.Byte != '1' {
		t.Errorf("reported byte = %d, want '1'", badByte.Byte)
	}
}

// TestParseLengthIsBytes verifies length is counted in bytes, not runes:
// a 4-rune string with multi-byte characters is a length error.
func TestParseLengthIsBytes(t *testing.T) {
	_, err := Parse("Ruét") // 4 runes, 5 bytes
	var badLen *BadLengthError
	if !errors.As(err, &badLen) {
		t.Fatalf("expected BadLengthError, got %v", err)
	}
	if badLen.Length != 5 {
		t.Errorf("reported length = %d, want 5", badLen.Length)
	}
}

func TestPropertyBits(t *testing.T) {
	tests := []struct {
		tag              string
		critical         bool
		public           bool
		reservedBitValid bool
		safeToCopy       bool
	}{
		{tag: "RuSt", critical: true, public: false, reservedBitValid: true, safeToCopy: true},
		{tag: "ruSt", critical: false, public: false, reservedBitValid: true, safeToCopy: true},
		{tag: "RUSt", critical: true, public: true, reservedBitValid: true, safeToCopy: true},
		{tag: "Rust", critical: true, public: false, reservedBitValid: false, safeToCopy: true},
		{tag: "RuST", critical: true, public: false, reservedBitValid: true, safeToCopy: false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			ct, err := Parse(tt.tag)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := ct.IsCritical(); got != tt.critical {
				t.Errorf("IsCritical() = %v, want %v", got, tt.critical)
			}
			if got := ct.IsPublic(); got != tt.public {
				t.Errorf("IsPublic() = %v, want %v", got, tt.public)
			}
			if got := ct.IsReservedBitValid(); got != tt.reservedBitValid {
				t.Errorf("IsReservedBitValid() = %v, want %v", got, tt.reservedBitValid)
			}
			if got := ct.IsSafeToCopy(); got != tt.safeToCopy {
				t.Errorf("IsSafeToCopy() = %v, want %v", got, tt.safeToCopy)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	valid, err := Parse("RuSt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !valid.IsValid() {
		t.Error("RuSt should be valid")
	}

	// Constructible yet invalid: reserved bit unset.
	invalid, err := Parse("Rust")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if invalid.IsValid() {
		t.Error("Rust should be invalid (reserved bit)")
	}
}

func TestString(t *testing.T) {
	ct, err := Parse("RuSt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := ct.String(); got != "RuSt" {
		t.Errorf("String() = %q, want %q", got, "RuSt")
	}

	// String round-trips through Parse for any valid tag.
	again, err := Parse(ct.String())
	if err != nil {
		t.Fatalf("round-trip Parse failed: %v", err)
	}
	if again != ct {
		t.Error("round-trip changed value")
	}
}

func TestEquality(t *testing.T) {
	a, err := FromBytes([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	b, err := Parse("RuSt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a != b {
		t.Error("equal type codes should compare equal")
	}

	c, err := Parse("ruSt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a == c {
		t.Error("case-differing type codes should not compare equal")
	}
}
