package utils

import "github.com/google/uuid"

// RequestIDHeader correlates a client request with backend log lines.
const RequestIDHeader = "X-Request-ID"

// UUIDGenerator issues request ids. They are v7 so that ids sort by issue
// time; a v4 id is returned when the v7 clock source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidRequestID reports whether id is a well-formed UUID of any version.
func ValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
