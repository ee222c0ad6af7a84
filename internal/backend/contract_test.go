package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCol is a minimal ordered wire slot for exercising the generic helpers.
type fakeCol string

func (c fakeCol) Fingerprint() Fingerprint { return FingerprintOf(string(c)) }

func (c fakeCol) MarshalText() ([]byte, error) { return []byte(c), nil }

func (c fakeCol) Compare(other fakeCol) int { return strings.Compare(string(c), string(other)) }

func (c *fakeCol) UnmarshalText(b []byte) error { *c = fakeCol(b); return nil }

func TestSortSlots(t *testing.T) {
	cols := []fakeCol{"gamma", "alpha", "beta"}
	SortSlots(cols)
	assert.Equal(t, []fakeCol{"alpha", "beta", "gamma"}, cols)

	var empty []fakeCol
	SortSlots(empty)
	assert.Empty(t, empty)
}
