package auth_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

func TestOTPGenerator_Generate(t *testing.T) {
	gen := auth.OTPGenerator{}

	t.Run("produces six digit codes in range", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			require.Len(t, code, 6)

			n, err := strconv.Atoi(code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 100000)
			assert.LessOrEqual(t, n, 999999)
		}
	})

	t.Run("codes vary across calls", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			seen[code] = true
		}
		// 50 draws from 900k values colliding down to 1 is not credible
		assert.Greater(t, len(seen), 1)
	})
}
