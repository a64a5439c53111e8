package hotconfig

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSONObject returns a ParseFunc that decodes data into a generic map and
// requires the top-level JSON value to be an object. Used for config files
// that are passed through without deeper shape validation.
func JSONObject(key string) ParseFunc {
	return func(data []byte) (any, error) {
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, ClassifyJSONError(key, err)
		}
		if doc == nil {
			return nil, &ShapeError{Key: key, Reason: "top-level value must be an object"}
		}
		return doc, nil
	}
}

// ClassifyJSONError sorts a json.Unmarshal error into the parse/shape
// taxonomy: a type mismatch means the document was well-formed JSON of the
// wrong structure, anything else means malformed bytes.
func ClassifyJSONError(key string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		reason := fmt.Sprintf("unexpected JSON %s", typeErr.Value)
		if typeErr.Field != "" {
			reason = fmt.Sprintf("unexpected JSON %s for field %q", typeErr.Value, typeErr.Field)
		}
		return &ShapeError{Key: key, Reason: reason}
	}
	return &ParseError{Key: key, Err: err}
}
