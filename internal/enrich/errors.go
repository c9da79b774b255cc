package enrich

import "fmt"

// ConfigError means remote enrichment was requested without a usable
// configuration (typically a blank API key). It is raised before any
// network attempt.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "enrich: " + e.Reason
}

// TransportError covers network failures and non-success HTTP statuses.
// Status and Body are populated when a response was actually received.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrich: request failed: %v", e.Err)
	}
	return fmt.Sprintf("enrich: API request failed with status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the service answered but the body did not
// contain usable candidate text.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "enrich: malformed response: " + e.Reason
}
