package heygen

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of upstream failure classes. Every error surfaced
// by the client carries exactly one kind.
type Kind int

const (
	// KindAPI is an unclassified upstream API error.
	KindAPI Kind = iota
	// KindAuthentication means the API key was rejected upstream.
	KindAuthentication
	// KindNotFound means the requested resource is unknown upstream.
	KindNotFound
	// KindSessionNotFound means the session id is unknown upstream.
	KindSessionNotFound
	// KindValidation means the upstream rejected the request data.
	KindValidation
	// KindRateLimit means the upstream throttled the request.
	KindRateLimit
	// KindServer means the upstream failed with a 5xx.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindSessionNotFound:
		return "session_not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	default:
		return "api"
	}
}

// Error is a classified upstream failure.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("heygen: %s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
}

// HTTPStatus returns the status code the gateway must answer with for this
// error kind. Server and unclassified API errors echo the upstream code when
// it is an error code, and fall back to 500 otherwise.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound, KindSessionNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimit:
		return http.StatusTooManyRequests
	default:
		if e.StatusCode >= http.StatusBadRequest {
			return e.StatusCode
		}
		return http.StatusInternalServerError
	}
}

// ClientCaused reports whether the failure was caused by the caller, which
// determines log severity (warn) versus server-caused failures (error).
func (e *Error) ClientCaused() bool {
	switch e.Kind {
	case KindAuthentication, KindNotFound, KindSessionNotFound, KindValidation, KindRateLimit:
		return true
	}
	return false
}

// Resource hints which flavor of not-found a 404 should classify as.
type Resource int

const (
	ResourceGeneric Resource = iota
	ResourceSession
	ResourceKnowledgeBase
)

// Classify maps an upstream HTTP status to an error kind. The message and
// details come from the upstream error body when it carried one.
func Classify(status int, message string, details map[string]string, resource Resource) *Error {
	e := &Error{
		Kind:       KindAPI,
		StatusCode: status,
		Message:    message,
		Details:    details,
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = KindAuthentication
	case status == http.StatusNotFound:
		if resource == ResourceSession {
			e.Kind = KindSessionNotFound
		} else {
			e.Kind = KindNotFound
		}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
	case status >= http.StatusInternalServerError:
		e.Kind = KindServer
	}

	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
