package booking

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

	for i := 0; i < 1000; i++ {
		code := GenerateConfirmationCode()
		require.Regexp(t, pattern, code)

		num, err := strconv.Atoi(code[2:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, num, 1000)
		assert.LessOrEqual(t, num, 9999)
	}
}
