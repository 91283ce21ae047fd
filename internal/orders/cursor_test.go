package orders

import "testing"

func TestCursor_RoundTrip(t *testing.T) {
	c := Cursor{Ms: 1700000000000, ID: "abc"}
	tok := EncodeCursor(c)

	got := DecodeCursor(tok)
	if got == nil {
		t.Fatalf("decode returned nil for valid token %q", tok)
	}
	if got.Ms != c.Ms || got.ID != c.ID {
		t.Fatalf("round trip mismatch: got %+v want %+v", *got, c)
	}
}

func TestDecodeCursor_Lenient(t *testing.T) {
	cases := []string{
		"",
		"not-base64!!!",
		"aGVsbG8=",                     // base64 of "hello", not JSON
		"e30=",                         // "{}" - missing fields
		EncodeCursor(Cursor{Ms: -5, ID: "x"}), // non-conforming ms
	}
	for _, in := range cases {
		if got := DecodeCursor(in); got != nil {
			t.Fatalf("DecodeCursor(%q) = %+v, want nil", in, got)
		}
	}
}
