package main

import (
	"fmt"
	"sync"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
)

// ExpressionExecutor evaluates a mapping expression against the request's
// JSON document, with the document's top-level fields as variables.
type ExpressionExecutor struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

var ExpressionError = fmt.Errorf("expression error")

func NewExpressionExecutor() *ExpressionExecutor {
	return &ExpressionExecutor{
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.Optimize(false),
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *ExpressionExecutor) Evaluate(expression string, document map[string]any) (any, error) {
	program, err := expr.Compile(expression, e.compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ExpressionError, err)
	}

	machine := e.vmPool.Get().(*vm.VM)
	defer e.vmPool.Put(machine)

	if document == nil {
		document = map[string]any{}
	}

	output, err := machine.Run(program, document)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ExpressionError, err)
	}

	return output, nil
}
