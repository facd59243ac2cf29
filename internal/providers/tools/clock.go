package tools

import (
	"time"

	"github.com/sandevgo/finchbot/internal/core"
)

const clockTool = "clock"

// SystemClock is the default core.Clock backed by local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ReadClock formats the current time of the given clock as a capability
// result. The format is fixed: YYYY-MM-DD HH:MM:SS, local time.
func ReadClock(clock core.Clock) core.Result {
	now := clock.Now().Format(time.DateTime)
	return core.Result{
		OK:      true,
		Content: now,
		Event: core.ToolEvent{
			Name:   clockTool,
			Input:  "",
			OK:     true,
			Output: now,
		},
	}
}
