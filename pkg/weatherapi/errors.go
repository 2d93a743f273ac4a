package weatherapi

import "fmt"

// RequestError reports that a request URL could not be built from the
// caller's inputs. It is raised locally before any network call and is
// never transient; the caller must fix the query or parameters.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("weatherapi: build %s request: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError reports an HTTP status outside the 2xx range. The body
// is never decoded. The condition may be transient (quota, outage) or
// permanent (bad key); retry policy is the caller's decision.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weatherapi: %s: unexpected response status %d", e.Op, e.StatusCode)
}

// DecodeError reports a 2xx response whose body does not match the
// expected schema: malformed JSON, a wrong primitive type, or a
// missing required field. It usually means API contract drift or a
// corrupted payload.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("weatherapi: decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
