package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededRandomStaysInRange(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestIntnNonPositive(t *testing.T) {
	assert.Equal(t, 0, New().Intn(0))
	assert.Equal(t, 0, NewSeeded(1).Intn(-3))
}

func TestStringUsesAlphabet(t *testing.T) {
	for _, r := range []Random{New(), NewSeeded(3)} {
		s := r.String(16, "AB")
		assert.Len(t, s, 16)
		for _, ch := range s {
			assert.Contains(t, "AB", string(ch))
		}
		assert.Empty(t, r.String(0, "AB"))
		assert.Empty(t, r.String(4, ""))
	}
}
