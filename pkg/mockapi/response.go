package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/wintryx/progressmaker/pkg/apierror"
)

// Response renders a handler result.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds with body encoded as JSON.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// Error responds with the standard error body. The body status always
// matches the HTTP status.
func Error(err *apierror.Error) Response {
	if err.Status == 0 {
		err.Status = http.StatusInternalServerError
	}
	return jsonResponse{status: err.Status, body: err}
}
