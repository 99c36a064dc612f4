package main

import (
	"fmt"
	"strings"

	"github.com/govalues/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluates an expression in prefix notation",
		Long: "Evaluates an expression in prefix notation, for example \"* 10 + 1.23 4.56\".\n" +
			"Operands and intermediate results are values of the target type.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := evaluator{c: a.context(), t: a.cfg.Type, log: a.log}
			d, err := e.evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
}

type evaluator struct {
	c   numeric.Context
	t   numeric.Type
	log *zap.Logger
}

func (e evaluator) evaluate(input string) (numeric.Decimal, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return numeric.Decimal{}, fmt.Errorf("parsing tokens: no tokens")
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return numeric.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return numeric.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func (e evaluator) processTokens(tokens []string) ([]numeric.Decimal, error) {
	stack := make([]numeric.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch {
		case binaryOps[token] != nil:
			stack, err = e.processOperator(stack, token)
		case unaryOps[token] != nil:
			stack, err = e.processFunction(stack, token)
		default:
			stack, err = e.processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (e evaluator) processOperator(stack []numeric.Decimal, token string) ([]numeric.Decimal, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	result, err := binaryOps[token](e.c, left, right, e.t)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	e.log.Debug("evaluated",
		zap.Object("left", left),
		zap.String("operator", token),
		zap.Object("right", right),
		zap.Object("result", result),
	)
	return append(stack, result), nil
}

func (e evaluator) processFunction(stack []numeric.Decimal, token string) ([]numeric.Decimal, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands")
	}
	arg := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	result, err := unaryOps[token](e.c, arg, e.t)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s(%s)\": %w", token, arg, err)
	}
	return append(stack, result), nil
}

func (e evaluator) processOperand(stack []numeric.Decimal, token string) ([]numeric.Decimal, error) {
	d, err := e.c.Parse(token, e.t)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
