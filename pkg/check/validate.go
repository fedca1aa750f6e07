package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxTextBytes bounds the UTF-8 size of the text field.
const MaxTextBytes = 100 * 1024

// Validate rejects requests the engine must never see.
func Validate(req *Request) error {
	if len(req.Text) > MaxTextBytes {
		return fmt.Errorf("%w: Text exceeds maximum size of %d bytes", ErrPayloadTooLarge, MaxTextBytes)
	}
	return nil
}

// DecodeRequest parses a JSON request body. A missing text field, a
// non-string text or malformed JSON yields ErrInvalidRequest. A body cut
// off by http.MaxBytesReader yields ErrPayloadTooLarge.
func DecodeRequest(r io.Reader) (*Request, error) {
	var wire struct {
		Text     *string  `json:"text"`
		Language string   `json:"language"`
		Options  *Options `json:"options"`
	}

	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request body exceeds %d bytes", ErrPayloadTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if wire.Text == nil {
		return nil, fmt.Errorf("%w: missing field `text`", ErrInvalidRequest)
	}

	req := &Request{
		Text:     *wire.Text,
		Language: wire.Language,
		Options:  wire.Options,
	}
	if req.Language == "" {
		req.Language = DefaultLanguage
	}
	return req, nil
}
