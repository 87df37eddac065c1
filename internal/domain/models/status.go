package models

import "fmt"

type StatusKind string

const (
	StatusForbidden   StatusKind = "forbidden"
	StatusConnection  StatusKind = "connection"
	StatusRateLimited StatusKind = "rate_limited"
	StatusNotFound    StatusKind = "not_found"
	StatusUnknown     StatusKind = "unknown"
)

// Status is a non-fatal provider outcome. Callers treat it as "no data this cycle".
type Status struct {
	Kind       StatusKind
	ChannelRef string
	Peer       string
	Cause      error
}

func (s *Status) Error() string {
	if s.Cause != nil {
		return fmt.Sprintf("статус %s: %v", s.Kind, s.Cause)
	}

	return "статус " + string(s.Kind)
}

func (s *Status) Unwrap() error {
	return s.Cause
}
