package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates the string is not a valid UUID format
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrNotUUIDv7 indicates the UUID is not version 7
	ErrNotUUIDv7 = errors.New("UUID must be version 7")
	// ErrFutureTimestamp indicates a UUIDv7 or review timestamp is in the future
	ErrFutureTimestamp = errors.New("timestamp is in the future")
)

// MaxFutureSkew is how far ahead of the server clock a client-generated
// UUIDv7 may be
const MaxFutureSkew = time.Minute

// ResolveID returns id when it is an acceptable client-generated UUIDv7,
// or a fresh UUIDv7 when id is empty. Offline clients create records
// with their own ids, so the id doubles as the creation time.
func ResolveID(id string) (string, error) {
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate id: %w", err)
		}
		return generated.String(), nil
	}

	if err := ValidateUUIDv7(id); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateUUIDv7 validates that a string is a valid UUIDv7 with timestamp within bounds.
// Returns nil if valid, or ErrInvalidUUID, ErrNotUUIDv7, or ErrFutureTimestamp.
func ValidateUUIDv7(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if parsed.Version() != 7 {
		return fmt.Errorf("%w: got version %d", ErrNotUUIDv7, parsed.Version())
	}

	// UUID.Time() is derived from the embedded Unix milliseconds for v7
	sec, nsec := parsed.Time().UnixTime()
	timestamp := time.Unix(sec, nsec)

	maxAllowed := time.Now().Add(MaxFutureSkew)
	if timestamp.After(maxAllowed) {
		return fmt.Errorf("%w: %v is more than %v ahead",
			ErrFutureTimestamp, timestamp.Format(time.RFC3339), MaxFutureSkew)
	}

	return nil
}

// ExtractUUIDv7Timestamp extracts the embedded timestamp from a UUIDv7.
// Returns zero time if parsing fails.
func ExtractUUIDv7Timestamp(id string) time.Time {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 7 {
		return time.Time{}
	}
	sec, nsec := parsed.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}
