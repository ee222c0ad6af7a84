// Package primitive provides small validated value types used across engine
// configuration and metadata: non-negative numbers, timeouts, and flags for
// engine-managed rows. Each type is obtainable only through its parse
// constructor or an explicitly named Unsafe constructor for call sites that
// establish the invariant by construction.
package primitive

import (
	"encoding/json"
	"fmt"
	"time"
)

// NonNegativeInt is an integer known to be >= 0.
type NonNegativeInt struct {
	n int
}

// NewNonNegativeInt validates n >= 0.
func NewNonNegativeInt(n int) (NonNegativeInt, error) {
	if n < 0 {
		return NonNegativeInt{}, fmt.Errorf("expected non-negative integer, got %d", n)
	}
	return NonNegativeInt{n: n}, nil
}

// UnsafeNonNegativeInt bypasses validation. Reserved for trusted internal
// call sites such as constant defaults.
func UnsafeNonNegativeInt(n int) NonNegativeInt {
	return NonNegativeInt{n: n}
}

// Int returns the wrapped value.
func (i NonNegativeInt) Int() int { return i.n }

// MarshalJSON encodes the value as a plain JSON number.
func (i NonNegativeInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.n)
}

// UnmarshalJSON decodes a plain JSON number, rejecting negatives.
func (i *NonNegativeInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected non-negative integer: %w", err)
	}
	parsed, err := NewNonNegativeInt(n)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// NonNegativeDuration is a duration known to be >= 0. Its wire form is a
// JSON number of seconds, fractional seconds allowed.
type NonNegativeDuration struct {
	d time.Duration
}

// NewNonNegativeDuration validates d >= 0.
func NewNonNegativeDuration(d time.Duration) (NonNegativeDuration, error) {
	if d < 0 {
		return NonNegativeDuration{}, fmt.Errorf("expected non-negative duration, got %s", d)
	}
	return NonNegativeDuration{d: d}, nil
}

// UnsafeNonNegativeDuration bypasses validation. Reserved for trusted
// internal call sites such as constant defaults.
func UnsafeNonNegativeDuration(d time.Duration) NonNegativeDuration {
	return NonNegativeDuration{d: d}
}

// Duration returns the wrapped value.
func (d NonNegativeDuration) Duration() time.Duration { return d.d }

// Seconds returns the duration in seconds.
func (d NonNegativeDuration) Seconds() float64 { return d.d.Seconds() }

// MarshalJSON encodes the duration as seconds.
func (d NonNegativeDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.d.Seconds())
}

// UnmarshalJSON decodes a JSON number of seconds, rejecting negatives.
func (d *NonNegativeDuration) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("expected non-negative number of seconds: %w", err)
	}
	if secs < 0 {
		return fmt.Errorf("expected non-negative number of seconds, got %v", secs)
	}
	return d.set(secs)
}

func (d *NonNegativeDuration) set(secs float64) error {
	dur := time.Duration(secs * float64(time.Second))
	parsed, err := NewNonNegativeDuration(dur)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
