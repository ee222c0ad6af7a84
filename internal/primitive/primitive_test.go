package primitive

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonNegativeInt_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 42, 1 << 30} {
		parsed, err := NewNonNegativeInt(n)
		require.NoError(t, err)
		assert.Equal(t, n, parsed.Int())

		encoded, err := json.Marshal(parsed)
		require.NoError(t, err)

		var decoded NonNegativeInt
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, parsed, decoded)
	}
}

func TestNonNegativeInt_RejectsNegative(t *testing.T) {
	_, err := NewNonNegativeInt(-1)
	assert.ErrorContains(t, err, "non-negative")

	var decoded NonNegativeInt
	err = json.Unmarshal([]byte("-5"), &decoded)
	assert.ErrorContains(t, err, "non-negative")
}

func TestUnsafeNonNegativeInt_BypassesValidation(t *testing.T) {
	// The unsafe constructor is for call sites that established the
	// invariant already; it must not be re-checked.
	assert.Equal(t, 7, UnsafeNonNegativeInt(7).Int())
}

func TestNonNegativeDuration_JSONSeconds(t *testing.T) {
	d, err := NewNonNegativeDuration(1500 * time.Millisecond)
	require.NoError(t, err)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(encoded))

	var decoded NonNegativeDuration
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 1500*time.Millisecond, decoded.Duration())
}

func TestNonNegativeDuration_RejectsNegative(t *testing.T) {
	_, err := NewNonNegativeDuration(-time.Second)
	assert.ErrorContains(t, err, "non-negative")

	var decoded NonNegativeDuration
	err = json.Unmarshal([]byte("-0.5"), &decoded)
	assert.ErrorContains(t, err, "non-negative")
}

func TestTimeout_Default(t *testing.T) {
	assert.Equal(t, 30, DefaultTimeout().Seconds())
	assert.Equal(t, 30*time.Second, DefaultTimeout().Duration())
}

func TestTimeout_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{name: "zero", input: "0", want: 0},
		{name: "positive", input: "60", want: 60},
		{name: "negative", input: "-1", wantErr: "non-negative"},
		{name: "fractional", input: "1.5", wantErr: "out of integer range"},
		{name: "out of range", input: "99999999999999999999", wantErr: "out of integer range"},
		{name: "not a number", input: `"soon"`, wantErr: "expected timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded Timeout
			err := json.Unmarshal([]byte(tt.input), &decoded)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, decoded.Seconds())

			encoded, err := json.Marshal(decoded)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(encoded))
		})
	}
}

func TestSystemDefined(t *testing.T) {
	assert.True(t, SystemDefined(true).IsSystemDefined())
	assert.False(t, SystemDefined(false).IsSystemDefined())
}
