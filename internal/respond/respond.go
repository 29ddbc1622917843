// Package respond defines the uniform response envelope every domain
// operation returns. The HTTP adapter maps Code to the transport status and
// serializes the envelope as {status, message, data}.
package respond

import "net/http"

type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Code    int    `json:"code"`
}

// New builds an envelope. Pure, no failure modes.
func New(message string, data any, code int) Envelope {
	return Envelope{Message: message, Data: data, Code: code}
}

// Status-code aliases used by the store helpers and usecases.
const (
	CodeSuccess      = http.StatusOK
	CodeCreated      = http.StatusCreated
	CodeBadRequest   = http.StatusBadRequest
	CodeUnauthorized = http.StatusUnauthorized
	CodeNotFound     = http.StatusNotFound
	CodeInternal     = http.StatusInternalServerError
)

// Shared message catalog. Entity-specific messages live with their usecases.
const (
	MsgFound            = "Found"
	MsgCreated          = "Created"
	MsgUpdated          = "Updated"
	MsgNotFound         = "Not found"
	MsgAlreadyDeleted   = "Already deleted"
	MsgValidationFailed = "Validation failed"
	MsgUnauthorized     = "Unauthorized"
	MsgTokenMissing     = "Access token not found"
	MsgTokenInvalid     = "Invalid access token"
	MsgInternal         = "Internal server error"
)

// OK reports whether the envelope carries a 2xx code.
func (e Envelope) OK() bool { return e.Code >= 200 && e.Code < 300 }
