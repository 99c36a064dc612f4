package main

import (
	"fmt"
	"strconv"

	"github.com/govalues/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type binaryOp func(c numeric.Context, d, e numeric.Decimal, t numeric.Type) (numeric.Decimal, error)

var binaryOps = map[string]binaryOp{
	"+":   numeric.Context.Add,
	"-":   numeric.Context.Sub,
	"*":   numeric.Context.Mul,
	"/":   numeric.Context.Quo,
	"div": numeric.Context.QuoInteger,
	"mod": numeric.Context.Rem,
	"**":  numeric.Context.Pow,
	"pow": numeric.Context.Pow,
	"min": numeric.Context.Min,
	"max": numeric.Context.Max,
}

type unaryOp func(c numeric.Context, d numeric.Decimal, t numeric.Type) (numeric.Decimal, error)

var unaryOps = map[string]unaryOp{
	"abs":   numeric.Context.Abs,
	"neg":   numeric.Context.Neg,
	"sign":  numeric.Context.Sign,
	"ceil":  numeric.Context.Ceil,
	"floor": numeric.Context.Floor,
}

// parseOperand parses a literal with its implied type.
func parseOperand(c numeric.Context, s string) (numeric.Decimal, error) {
	d, _, err := c.ParseImplied(s)
	if err != nil {
		return numeric.Decimal{}, err
	}
	return d, nil
}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <operand> <operator> <operand> | <function> <operand>",
		Short: "Computes one operation and prints the result in the target type",
		Long: "Computes one operation and prints the result in the target type.\n" +
			"Operators: + - * / div mod ** pow min max cmp.\n" +
			"Functions: abs neg sign ceil floor.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.context()
			var (
				r   numeric.Decimal
				err error
			)
			if len(args) == 2 {
				op, ok := unaryOps[args[0]]
				if !ok {
					return fmt.Errorf("unknown function %q", args[0])
				}
				d, err := parseOperand(c, args[1])
				if err != nil {
					return err
				}
				r, err = op(c, d, a.cfg.Type)
				if err != nil {
					return err
				}
			} else if args[1] == "cmp" {
				d, err := parseOperand(c, args[0])
				if err != nil {
					return err
				}
				e, err := parseOperand(c, args[2])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Cmp(e))
				return err
			} else {
				op, ok := binaryOps[args[1]]
				if !ok {
					return fmt.Errorf("unknown operator %q", args[1])
				}
				d, err := parseOperand(c, args[0])
				if err != nil {
					return err
				}
				e, err := parseOperand(c, args[2])
				if err != nil {
					return err
				}
				r, err = op(c, d, e, a.cfg.Type)
				if err != nil {
					return err
				}
			}
			a.log.Debug("computed", zap.Strings("args", args), zap.Object("result", r))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
}

func newInferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infer <literal>...",
		Short: "Prints the smallest NUMERIC type that holds each literal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.context()
			for _, s := range args {
				d, t, err := c.ParseImplied(s)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\t%v\n", s, t, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRoundCmd(a *app) *cobra.Command {
	var truncate bool
	cmd := &cobra.Command{
		Use:   "round <value> <digits>",
		Short: "Rounds a value to a number of digits after the decimal point",
		Long: "Rounds a value to a number of digits after the decimal point, like the\n" +
			"ROUND and TRUNCATE functions of SQL. Negative digits round the integer part.\n" +
			"The value keeps its implied type and the result is printed in the target type.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.context()
			d, src, err := c.ParseImplied(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("digits %q: %w", args[1], err)
			}
			round := c.Round
			if truncate {
				round = c.Trunc
			}
			r, err := round(d, n, src, a.cfg.Type)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().BoolVar(&truncate, "trunc", false, "Truncate toward zero instead of rounding")
	return cmd
}
