package scans

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Fields is what we manage to extract from a raw scan payload.
type Fields struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Note  string `json:"note,omitempty"`
}

var (
	phoneRe = regexp.MustCompile(`(\+84|0)\d{9,10}`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// ParseRaw extracts contact fields from a scanned payload, best effort.
// A JSON object wins outright; otherwise the free text is scraped with
// regexes and kept whole as the note.
func ParseRaw(raw string) Fields {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Fields{}
	}

	if strings.HasPrefix(raw, "{") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err == nil {
			return Fields{
				Name:  stringField(obj, "name"),
				Phone: stringField(obj, "phone"),
				Email: stringField(obj, "email"),
				Note:  stringField(obj, "note"),
			}
		}
	}

	f := Fields{
		Phone: phoneRe.FindString(raw),
		Email: emailRe.FindString(raw),
		Note:  raw,
	}

	// A short first line with no digits is usually the person's name.
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimSpace(line)
	if line != "" && len(line) <= 60 && !strings.ContainsAny(line, "0123456789@") {
		f.Name = line
	}
	return f
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
