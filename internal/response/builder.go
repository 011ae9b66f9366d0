package response

import (
	"encoding/json"
)

// Build response to payload and error. Payload is kept on error, it may hold partial result.
func Build(payload interface{}, err error) ([]byte, error) {
	response := response{
		IsOk:    err == nil,
		Payload: payload,
	}
	if err != nil {
		response.Error = err.Error()
	}
	return json.Marshal(response)
}
