package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-[A-Z0-9]{9}$`)

	t.Run("matches reference format", func(t *testing.T) {
		code, err := NewBookingCode()

		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	})

	t.Run("codes are unique and well-formed across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			code, err := NewBookingCode()

			require.NoError(t, err)
			assert.Regexp(t, pattern, code)
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}
