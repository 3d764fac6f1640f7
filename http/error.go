package http

import (
	"net/http"

	"github.com/fwojciec/dealscope"
)

// errorResponse is the JSON error envelope: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	dealscope.ECONFLICT:      http.StatusConflict,
	dealscope.EINVALID:       http.StatusBadRequest,
	dealscope.ENOTFOUND:      http.StatusNotFound,
	dealscope.EUNAVAILABLE:   http.StatusBadGateway,
	dealscope.EUNPROCESSABLE: http.StatusBadGateway,
	dealscope.EINTERNAL:      http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes the error to the response as a JSON envelope. Internal
// errors are logged with full detail and obscured from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := dealscope.ErrorCode(err), dealscope.ErrorMessage(err)

	if code == dealscope.EINTERNAL {
		s.Logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.writeJSON(w, r, ErrorStatusCode(code), errorResponse{Error: message})
}
