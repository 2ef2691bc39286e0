package req

import (
	"encoding/json"
	"io"
	"net/http"

	"sqlgateway/pkg/res"
)

// Decode reads a JSON payload of type T from body.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	return payload, err
}

// HandleBody decodes the request body into T. On malformed input it writes
// the 400 response itself and returns the error so the caller can bail out.
func HandleBody[T any](w *http.ResponseWriter, r *http.Request) (*T, error) {
	body, err := Decode[T](r.Body)
	if err != nil {
		res.Json(*w, map[string]any{"detail": "invalid request body"}, http.StatusBadRequest)
		return nil, err
	}
	return &body, nil
}
