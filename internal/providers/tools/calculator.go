package tools

import (
	"github.com/sandevgo/finchbot/internal/core"
	"github.com/sandevgo/finchbot/pkg/calc"
)

const calculatorTool = "calculator"

// Calculate runs an expression through the sandboxed evaluator and wraps
// the outcome as a capability result. Evaluation failures surface as an
// honest OK=false event carrying the cause, never as a panic.
func Calculate(expr string) core.Result {
	value, err := calc.Evaluate(expr)
	if err != nil {
		return core.Result{
			OK:      false,
			Content: "Sorry, I couldn't compute that.",
			Event: core.ToolEvent{
				Name:   calculatorTool,
				Input:  expr,
				OK:     false,
				Output: err.Error(),
			},
		}
	}

	out := calc.Format(value)
	return core.Result{
		OK:      true,
		Content: out,
		Event: core.ToolEvent{
			Name:   calculatorTool,
			Input:  expr,
			OK:     true,
			Output: out,
		},
	}
}
