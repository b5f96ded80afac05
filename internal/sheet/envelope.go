package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The gviz endpoint answers with
//
//	/*O_o*/\ngoogle.visualization.Query.setResponse({...});
//
// The wrapper has a fixed shape, so it is cut by length rather than parsed.
const (
	EnvelopePrefix = "/*O_o*/\ngoogle.visualization.Query.setResponse("
	EnvelopeSuffix = ");"
)

var (
	ErrMalformedResponse = errors.New("malformed response")
	ErrAPI               = errors.New("api reported error")
	ErrStructure         = errors.New("unexpected table structure")
)

// APIError carries the error list the endpoint reported.
type APIError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Detail  string `json:"detailed_message"`
}

type response struct {
	Status string     `json:"status"`
	Errors []APIError `json:"errors"`
	Table  *Table     `json:"table"`
}

// Unwrap strips the fixed prefix and suffix of the envelope.
func Unwrap(body []byte) ([]byte, error) {
	p, s := len(EnvelopePrefix), len(EnvelopeSuffix)
	if len(body) < p+s {
		return nil, fmt.Errorf("%w: body too short (%d bytes)", ErrMalformedResponse, len(body))
	}
	return body[p : len(body)-s], nil
}

// Decode unwraps and decodes a gviz response body into a table.
func Decode(body []byte) (*Table, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return nil, err
	}

	var res response
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if res.Status == "error" {
		if len(res.Errors) > 0 {
			e := res.Errors[0]
			return nil, fmt.Errorf("%w: reason=%s message=%s", ErrAPI, e.Reason, e.Message)
		}
		return nil, ErrAPI
	}

	if res.Table == nil || res.Table.Rows == nil {
		return nil, fmt.Errorf("%w: table rows missing", ErrStructure)
	}

	return res.Table, nil
}
