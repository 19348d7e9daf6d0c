package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/reocities/reocities-cli/pkg/errors"
)

// maxRawBodyLen bounds the diagnostic we keep around when the server returns
// something that isn't JSON, so an HTML error page can't blow up the output.
const maxRawBodyLen = 500

// Response is the normalized envelope for every API call. The service
// doesn't report errors consistently -- bodies may be empty, HTML error
// pages, or JSON without an error field -- so every anomaly is folded into
// the Error field here and callers only ever handle success or failure.
type Response struct {
	// Success reports whether the server marked the request as successful.
	Success bool

	// Error holds the server-reported error, or one synthesized from the
	// HTTP status when the server didn't report one. Empty on success.
	Error string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// RawBody holds up to maxRawBodyLen characters of the body when it
	// couldn't be parsed as JSON, as a diagnostic.
	RawBody string

	// Body is the raw JSON body, kept so callers can Decode the parts of
	// the payload they care about.
	Body []byte
}

// Decode unmarshals the response body into v.
func (r Response) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return errors.New("response has no body")
	}
	return json.Unmarshal(r.Body, v)
}

// Reason returns the error in a form that's always printable.
func (r Response) Reason() string {
	if r.Error != "" {
		return r.Error
	}
	return "unknown error"
}

// envelope is the subset of fields shared by all server responses. Some
// endpoints report errors under "error", others under "message".
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handleResponse turns whatever the server sent back into a Response. It
// must never panic: the remote service has been observed returning empty
// bodies, plain-text proxies' error pages, and error statuses with no error
// field, and all of those need to surface as ordinary failures.
func handleResponse(resp *http.Response) Response {
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return Response{
			StatusCode: resp.StatusCode,
			Error: fmt.Sprintf("failed to read response (HTTP %d): %s",
				resp.StatusCode, err),
		}
	}

	if len(body) == 0 {
		return Response{
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("empty response (HTTP %d)", resp.StatusCode),
		}
	}

	var parsed envelope
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Response{
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("invalid JSON (HTTP %d)", resp.StatusCode),
			RawBody:    truncate(string(body), maxRawBodyLen),
		}
	}

	result := Response{
		Success:    parsed.Success,
		Error:      parsed.Error,
		StatusCode: resp.StatusCode,
		Body:       body,
	}
	if result.Error == "" && resp.StatusCode >= 400 {
		result.Error = fmt.Sprintf("HTTP %d: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// Some endpoints report failures under "message" instead of "error".
	// Successful responses may carry an informational message too, which
	// must not read as an error.
	if result.Error == "" && !parsed.Success {
		result.Error = parsed.Message
	}
	return result
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
