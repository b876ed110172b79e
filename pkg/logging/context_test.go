package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upbvirtual/enroller/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithCourse adds course fields", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithCourse(ctx, "MAT101", "12345")

		logging.FromContext(ctx).Info().Msg("processing")

		assert.Contains(t, tl.Output(), `"course":"MAT101"`)
		assert.Contains(t, tl.Output(), `"section":"12345"`)
	})

	t.Run("WithRunID stores and logs the id", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-1")

		assert.Equal(t, "run-1", logging.RunID(ctx))
		logging.Ctx(ctx).Info().Msg("start")
		assert.Contains(t, tl.Output(), `"run_id":"run-1"`)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithVariant(ctx, "moderator")
		ctx = logging.WithOperation(ctx, "merge")
		ctx = logging.WithField(ctx, "files", 3)

		logging.FromContext(ctx).Info().Msg("done")

		assert.Contains(t, tl.Output(), `"variant":"moderator"`)
		assert.Contains(t, tl.Output(), `"operation":"merge"`)
		assert.Contains(t, tl.Output(), `"files":3`)
	})
}
