package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSession is returned before any network I/O when an authenticated
// request is attempted with no stored access token.
var ErrNoSession = errors.New("no session: log in first")

// genericMessage is used when an error body carries no usable message.
const genericMessage = "Request failed"

// HTTPError is a non-2xx response from the backend. Message is the server's
// own message when the body carried one, else a fixed generic message. A 401
// is not special-cased: there is no refresh exchange, so an expired session
// surfaces as ordinary failures until the user logs out and back in.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// errorBody covers both error shapes the backend emits:
// {"message": "..."} and {"error": {"message": "..."}}.
type errorBody struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func serverMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error.Message != "" {
			return eb.Error.Message
		}
	}
	return genericMessage
}
