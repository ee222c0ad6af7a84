package primitive

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timeout is a non-negative whole number of seconds. The wire form is a
// plain JSON number; values outside integer range are rejected before the
// sign is checked.
type Timeout struct {
	seconds int
}

// DefaultTimeoutSeconds is applied when no timeout is configured.
const DefaultTimeoutSeconds = 30

// DefaultTimeout returns the engine-wide default of 30 seconds.
func DefaultTimeout() Timeout {
	return Timeout{seconds: DefaultTimeoutSeconds}
}

// NewTimeout validates seconds >= 0.
func NewTimeout(seconds int) (Timeout, error) {
	if seconds < 0 {
		return Timeout{}, fmt.Errorf("timeout must be non-negative, got %d", seconds)
	}
	return Timeout{seconds: seconds}, nil
}

// UnsafeTimeout bypasses validation. Reserved for trusted internal call
// sites such as constant defaults.
func UnsafeTimeout(seconds int) Timeout {
	return Timeout{seconds: seconds}
}

// Seconds returns the timeout in whole seconds.
func (t Timeout) Seconds() int { return t.seconds }

// Duration returns the timeout as a time.Duration.
func (t Timeout) Duration() time.Duration {
	return time.Duration(t.seconds) * time.Second
}

// MarshalJSON encodes the timeout as a plain JSON number of seconds.
func (t Timeout) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.seconds)
}

// UnmarshalJSON decodes a JSON number of seconds. Range is checked before
// sign so an absurdly large negative or positive value reports as
// out-of-range rather than merely negative.
func (t *Timeout) UnmarshalJSON(b []byte) error {
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected timeout in seconds: %w", err)
	}
	seconds, err := num.Int64()
	if err != nil {
		return fmt.Errorf("timeout %s out of integer range: %w", num, err)
	}
	if seconds > int64(maxInt) || seconds < int64(minInt) {
		return fmt.Errorf("timeout %d out of integer range", seconds)
	}
	parsed, perr := NewTimeout(int(seconds))
	if perr != nil {
		return perr
	}
	*t = parsed
	return nil
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
