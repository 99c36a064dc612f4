package main

import (
	"fmt"
	"strings"

	"github.com/govalues/numeric"
	"github.com/spf13/cobra"
)

var conversions = []string{"string", "raw", "int32", "int64", "round-int64", "float64", "digits", "coef", "shopspring"}

func newConvertCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Converts a value of the target type to another representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.context().Parse(args[0], a.cfg.Type)
			if err != nil {
				return err
			}
			out, err := convert(d, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "string", "Representation: "+strings.Join(conversions, ", "))
	return cmd
}

func convert(d numeric.Decimal, to string) (string, error) {
	switch to {
	case "string":
		return d.String(), nil
	case "raw":
		return d.RawString(), nil
	case "int32":
		i, err := d.Int32()
		return fmt.Sprint(i), err
	case "int64":
		i, err := d.Int64()
		return fmt.Sprint(i), err
	case "round-int64":
		i, err := d.RoundInt64()
		return fmt.Sprint(i), err
	case "float64":
		f, err := d.Float64()
		return fmt.Sprint(f), err
	case "digits":
		g, err := d.Digits()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("coef=%v exp=%v neg=%v", g.Coef, g.Exp, g.Neg), nil
	case "coef":
		u, err := d.Coef()
		if err != nil {
			return "", err
		}
		return u.Dec(), nil
	case "shopspring":
		s, err := d.Shopspring()
		if err != nil {
			return "", err
		}
		return s.String(), nil
	}
	return "", fmt.Errorf("unknown representation %q, expected one of %v", to, strings.Join(conversions, ", "))
}
