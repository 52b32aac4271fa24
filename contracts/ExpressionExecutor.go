package contracts

type ExpressionExecutor interface {
	Evaluate(expression string, document map[string]any) (any, error)
}
