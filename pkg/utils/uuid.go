package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateTicketNo generates a unique ticket number for a sale
func GenerateTicketNo() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateInternalCode generates a unique internal product code
func GenerateInternalCode() string {
	return "PROD-" + strings.ToUpper(uuid.New().String()[:8])
}
