// Package pipeline provides the stage abstraction and the data passed between stages.
package pipeline

import (
	"context"
	"time"

	"github.com/user/frame2video/pkg/ports"
)

// Stage is one step of a run: it turns an input into an output.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a plain function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Timed wraps stage so that its wall time is logged at debug level under name.
// The result and error of the wrapped stage are returned unchanged.
func Timed[In, Out any](name string, stage Stage[In, Out], logger ports.Logger) Stage[In, Out] {
	return StageFunc[In, Out](func(ctx context.Context, input In) (Out, error) {
		start := time.Now()
		out, err := stage.Execute(ctx, input)
		logger.Debug("Stage %s finished in %s", name, time.Since(start).Round(time.Millisecond))
		return out, err
	})
}
