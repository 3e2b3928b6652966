// Package api holds the plumbing shared by every Torn API section binding:
// the response envelope, the API error taxonomy and the timestamp codec.
package api

import (
	"encoding/json"
	"fmt"
)

const errDeserialize = "failed to decode response: %w"

// Response is a successful Torn API payload. The body is kept raw and
// decoded lazily; section packages wrap it with typed accessors.
type Response struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// ParseResponse validates a raw API body and wraps it in a Response.
// The Torn API reports failures inside a regular 200 payload, so the
// error envelope is checked before anything else; an *Error is returned
// when one is present.
func ParseResponse(raw []byte) (*Response, error) {
	var envelope struct {
		Error *struct {
			Code   int    `json:"code"`
			Reason string `json:"error"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf(errDeserialize, err)
	}
	if envelope.Error != nil {
		return nil, &Error{Code: envelope.Error.Code, Reason: envelope.Error.Reason}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf(errDeserialize, err)
	}

	return &Response{raw: raw, fields: fields}, nil
}

// Decode unmarshals the whole body into v. Selections that flatten their
// data into the response root (user "basic", key "info") decode this way.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.raw, v); err != nil {
		return fmt.Errorf(errDeserialize, err)
	}
	return nil
}

// DecodeField unmarshals a single top-level key into v. Selections that
// nest their data under a named key ("attacks", "items", ...) decode this
// way. A missing key yields an error wrapping ErrMissingField.
func (r *Response) DecodeField(field string, v any) error {
	value, ok := r.fields[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingField, field)
	}
	if err := json.Unmarshal(value, v); err != nil {
		return fmt.Errorf(errDeserialize, err)
	}
	return nil
}

// Has reports whether the response carries the given top-level key.
func (r *Response) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Raw returns the response body as received from the API.
func (r *Response) Raw() []byte {
	return r.raw
}
