package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	coreerror "github.com/murtho/utility/core/error"
	"github.com/murtho/utility/utils/stringx"
)

func (a *app) randomCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random <length>",
		Short: "Print random lowercase hexadecimal strings",
		Long: `Prints count random strings of exactly length characters from 0-9a-f,
one per line.

Examples:
  strutil random 16           # e.g. 9f2c4e0a7b1d3c58
  strutil random 8 -n 3       # three 8 character strings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil || length < 0 {
				return coreerror.New("length must be a non-negative integer").
					WithCode(coreerror.CodeInvalidInput).
					WithOperation("strutil.random").
					WithDetail("length", args[0])
			}
			if count < 1 {
				return coreerror.New("count must be at least 1").
					WithCode(coreerror.CodeValueOutOfRange).
					WithOperation("strutil.random").
					WithDetail("count", count)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintln(out, stringx.RandomString(length)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of strings to print")
	return cmd
}
