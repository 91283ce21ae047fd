package scans

import "testing"

func TestParseRaw_JSON(t *testing.T) {
	f := ParseRaw(`{"name":"Nguyễn An","phone":"0912345678","email":"an@example.com","note":"giao giờ hành chính"}`)
	if f.Name != "Nguyễn An" || f.Phone != "0912345678" || f.Email != "an@example.com" {
		t.Fatalf("json extraction wrong: %+v", f)
	}
	if f.Note != "giao giờ hành chính" {
		t.Fatalf("note wrong: %q", f.Note)
	}
}

func TestParseRaw_FreeText(t *testing.T) {
	raw := "Nguyễn An\nsđt +84912345678, mail an@example.com"
	f := ParseRaw(raw)
	if f.Phone != "+84912345678" {
		t.Fatalf("phone = %q", f.Phone)
	}
	if f.Email != "an@example.com" {
		t.Fatalf("email = %q", f.Email)
	}
	if f.Name != "Nguyễn An" {
		t.Fatalf("name = %q", f.Name)
	}
	if f.Note != raw {
		t.Fatalf("note should keep the raw text, got %q", f.Note)
	}
}

func TestParseRaw_MalformedJSONFallsBack(t *testing.T) {
	f := ParseRaw(`{"name": broken... 0912345678`)
	if f.Phone != "0912345678" {
		t.Fatalf("expected regex fallback to find phone, got %+v", f)
	}
}

func TestParseRaw_Empty(t *testing.T) {
	if f := ParseRaw("   "); f != (Fields{}) {
		t.Fatalf("expected zero fields, got %+v", f)
	}
}
