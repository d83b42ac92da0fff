package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

// Error is the body of every failed response.
type Error struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)

	// gin buffers the status until the first write.
	if f, ok := w.(interface{ WriteHeaderNow() }); ok {
		f.WriteHeaderNow()
	}
}

// Fail writes err as {"error": "..."}.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, Error{Error: err.Error()})
}
