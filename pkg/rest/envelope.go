package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the response convention shared by every backend endpoint. Data
// may hold a single object or an array depending on the endpoint; the analytic
// fields are only present on the corresponding analytics reads.
type Envelope struct {
	Data         json.RawMessage `json:"data,omitempty"`
	Message      string          `json:"message,omitempty"`
	Total        int             `json:"total,omitempty"`
	AverageMarks string          `json:"averageMarks,omitempty"`
	GPA          string          `json:"gpa,omitempty"`
	Percentage   string          `json:"percentage,omitempty"`
}

// APIError is a server-reported failure carrying the backend's message payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
}

// DecodeOne unmarshals the envelope data into a single record.
func DecodeOne[T any](env *Envelope) (T, error) {
	var out T
	if env == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return out, fmt.Errorf("response contained no data")
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("failed to decode record: %w", err)
	}
	return out, nil
}

// DecodeList normalizes the envelope data into a slice: an array decodes as
// is, a single object becomes a one-element slice and absent data yields an
// empty slice.
func DecodeList[T any](env *Envelope) ([]T, error) {
	if env == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return []T{}, nil
	}

	trimmed := bytes.TrimSpace(env.Data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return []T{single}, nil
}
