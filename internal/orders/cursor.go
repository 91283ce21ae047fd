package orders

import (
	"encoding/base64"
	"encoding/json"
)

// Cursor is the resume point for keyset pagination: the creation epoch-millis
// and identifier of the last record of the previous page.
type Cursor struct {
	Ms int64  `json:"ms"`
	ID string `json:"id"`
}

// EncodeCursor renders a cursor as an opaque base64 token.
func EncodeCursor(c Cursor) string {
	b, _ := json.Marshal(c)
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeCursor parses a token from a previous response. Malformed or
// non-conforming input yields nil, meaning "start from the first page";
// a bad cursor is never an error.
func DecodeCursor(s string) *Cursor {
	if s == "" {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil
	}
	if c.Ms <= 0 || c.ID == "" {
		return nil
	}
	return &c
}
