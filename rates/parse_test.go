package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	t.Run("comma and point are equivalent", func(t *testing.T) {
		t.Parallel()

		testTable := []struct {
			comma string
			point string
		}{
			{"3,52", "3.52"},
			{"0,0001", "0.0001"},
			{" 3,75 ", "3.75"},
			{"4", "4"},
		}

		for _, testCase := range testTable {
			fromComma, err := ParseDecimal(testCase.comma)
			require.NoError(t, err)

			fromPoint, err := ParseDecimal(testCase.point)
			require.NoError(t, err)

			assert.Equal(t, fromPoint, fromComma)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{
			"",
			"   ",
			"n/a",
			"S/3.52",
			"3,52,10",
		} {
			_, err := ParseDecimal(input)

			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestRound4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.2346, Round4(1.23456))
	assert.Equal(t, 3.5455, Round4(3.54551))
	assert.Equal(t, 3.5, Round4(3.5))
	assert.Equal(t, 0.0, Round4(0.00001))
}
