package pen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/penrates/fetch/mock"
)

func TestSpotSource_Extract(t *testing.T) {
	t.Parallel()

	t.Run("comma-formatted price", func(t *testing.T) {
		t.Parallel()

		var (
			source = NewSpotSource("https://example.com", testOpts(t)...)

			session = &mock.Session{
				HTMLFn: func(_ context.Context) (string, error) {
					return `<html><body>
						<span data-test="instrument-price-last"> 3,5215 </span>
					</body></html>`, nil
				},
			}
		)

		v, err := source.Extract(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, 3.5215, v)
	})

	t.Run("value is rounded to 4 decimals", func(t *testing.T) {
		t.Parallel()

		var (
			source = NewSpotSource("https://example.com", testOpts(t)...)

			session = &mock.Session{
				HTMLFn: func(_ context.Context) (string, error) {
					return `<html><body>
						<span data-test="instrument-price-last">3.52149</span>
					</body></html>`, nil
				},
			}
		)

		v, err := source.Extract(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, 3.5215, v)
	})

	t.Run("missing price element", func(t *testing.T) {
		t.Parallel()

		var (
			source = NewSpotSource("https://example.com", testOpts(t)...)

			session = &mock.Session{
				HTMLFn: func(_ context.Context) (string, error) {
					return `<html><body><p>USD/PEN</p></body></html>`, nil
				},
			}
		)

		_, err := source.Extract(context.Background(), session)

		assert.Error(t, err)
	})

	t.Run("unparsable price text", func(t *testing.T) {
		t.Parallel()

		var (
			source = NewSpotSource("https://example.com", testOpts(t)...)

			session = &mock.Session{
				HTMLFn: func(_ context.Context) (string, error) {
					return `<html><body>
						<span data-test="instrument-price-last">--</span>
					</body></html>`, nil
				},
			}
		)

		_, err := source.Extract(context.Background(), session)

		assert.Error(t, err)
	})
}
