package launchconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Render encodes doc as indented JSON terminated by a single newline.
// Arguments are not HTML-escaped.
func Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode launch document: %w", err)
	}

	out := pretty.PrettyOptions(buf.Bytes(), prettyOptions)
	out = bytes.TrimRight(out, "\n")
	return append(out, '\n'), nil
}
