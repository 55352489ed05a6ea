package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
)

// textValue accepts a JSON string or number and keeps it as text, so clients
// may send a PIN or a difficulty as 1234 or "1234".
type textValue string

func (t *textValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = textValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("must be a string or a number")
	}
	*t = textValue(n.String())
	return nil
}

func (t *textValue) ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
