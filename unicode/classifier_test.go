package unicode

import "testing"

func TestIsLetter(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'Z', true}, {'0', false}, {'_', false},
		{0x0391, true},  // Greek capital alpha
		{0x4E2D, true},  // CJK ideograph
		{0x0030, false}, // ASCII digit is not a letter
	}
	for _, c := range cases {
		if got := IsLetter(c.r); got != c.want {
			t.Errorf("IsLetter(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	if !IsDigit('5') {
		t.Error("IsDigit('5') = false, want true")
	}
	if IsDigit('a') {
		t.Error("IsDigit('a') = true, want false")
	}
	if !IsDigit(0x0660) { // Arabic-Indic zero
		t.Error("IsDigit(U+0660) = false, want true")
	}
}

func TestIsConnectorPunctuation(t *testing.T) {
	if !IsConnectorPunctuation('_') {
		t.Error("IsConnectorPunctuation('_') = false, want true")
	}
	if IsConnectorPunctuation('-') {
		t.Error("IsConnectorPunctuation('-') = true, want false")
	}
}

func TestIsWhiteSpaceAndLineTerminator(t *testing.T) {
	for _, r := range []rune{'\t', '\v', '\f', ' ', 0x00A0, 0xFEFF} {
		if !IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'\n', '\r', 0x2028, 0x2029} {
		if !IsLineTerminator(r) {
			t.Errorf("IsLineTerminator(%U) = false, want true", r)
		}
		if IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%U) = true, want false (line terminators are not whitespace)", r)
		}
	}
}

func TestIsWordChar(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', '_'} {
		if !IsWordChar(r) {
			t.Errorf("IsWordChar(%q) = false, want true", r)
		}
	}
	if IsWordChar('$') {
		t.Error("IsWordChar('$') = true, want false")
	}
}

func TestHexToInt(t *testing.T) {
	cases := map[rune]int{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15}
	for r, want := range cases {
		if got := HexToInt(r); got != want {
			t.Errorf("HexToInt(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestHexToIntPanicsOnNonHex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("HexToInt('g') did not panic")
		}
	}()
	HexToInt('g')
}
