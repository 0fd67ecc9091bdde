package bindkit

import (
	"encoding/json"
	"io"
	"net/http"
)

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
// This is useful for successful operations that don't return data,
// such as DELETE endpoints or successful updates where no data needs to be returned.
//
// Example:
//
//	handler := bindkit.HandlerFunc[bindkit.Context, DeleteRequest](
//		func(ctx bindkit.Context, req DeleteRequest) bindkit.Response {
//			deleteResource(req.ID)
//			return bindkit.Empty()
//		},
//	)
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
//
// Example:
//
//	// Return 201 Created without body
//	return bindkit.EmptyWithStatus(http.StatusCreated)
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}

// textResponse renders a plain-text body with a status code.
type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text creates a plain-text response with the given status code. The body is
// written verbatim, without a trailing newline.
func Text(status int, body string) Response {
	return textResponse{
		status: status,
		body:   body,
	}
}

// jsonResponse renders a value as a JSON body.
type jsonResponse struct {
	status int
	value  any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.value)
}

// JSONResponse creates a 200 OK response with v serialized as the JSON body.
//
// Example:
//
//	return bindkit.JSONResponse(user)
func JSONResponse(v any) Response {
	return jsonResponse{
		status: http.StatusOK,
		value:  v,
	}
}

// JSONWithStatus creates a JSON response with a custom status code.
//
// Example:
//
//	return bindkit.JSONWithStatus(http.StatusCreated, user)
func JSONWithStatus(status int, v any) Response {
	return jsonResponse{
		status: status,
		value:  v,
	}
}
