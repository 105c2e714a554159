package response

import (
	"encoding/json"
)

type response struct {
	IsOk    bool        `json:"is_ok"`
	Payload interface{} `json:"payload,omitempty"`
}

// Build the response envelope for a payload and error. A non-nil
// error wins: the envelope carries its message instead of the payload.
func Build(payload interface{}, err error) ([]byte, error) {
	response := response{
		IsOk: err == nil,
	}

	if payload != nil {
		response.Payload = payload
	}

	if !response.IsOk {
		response.Payload = err.Error()
	}
	return json.Marshal(response)
}
