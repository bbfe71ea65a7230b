package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	airmac "github.com/dogeorg/airmac/pkg"
)

var encodeJSON = func(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// JSON renders an indented array. Encoding errors come back as a message
// string in place of the document.
func JSON(records []airmac.NetworkRecord) string {
	if records == nil {
		records = []airmac.NetworkRecord{}
	}

	b, err := encodeJSON(records)
	if err != nil {
		return fmt.Sprintf("Error encoding to JSON: %v", err)
	}
	return string(b)
}
