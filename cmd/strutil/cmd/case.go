package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murtho/utility/utils/stringx"
)

func (a *app) camelizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camelize <input>",
		Short: "Convert a separated identifier to camelCase",
		Long: `Joins the segments of input, upper-casing each segment's first letter,
and lower-cases the first letter of the result.

Examples:
  strutil camelize camel_case               # camelCase
  strutil camelize do-something-else -s -   # doSomethingElse`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separator := a.setting(cmd, "separator", "case.separator", stringx.DefaultSeparator)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), stringx.Camelize(args[0], separator))
			return err
		},
	}

	cmd.Flags().StringP("separator", "s", stringx.DefaultSeparator, "segment separator")
	return cmd
}

func (a *app) uncamelizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncamelize <input>",
		Short: "Convert a camelCase identifier to a separated lower-case one",
		Long: `Inserts the separator before every uppercase letter A-Z after the first
character, then lower-cases the result.

Examples:
  strutil uncamelize camelCase                  # camel_case
  strutil uncamelize someWeirdSetting -s -      # some-weird-setting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separator := a.setting(cmd, "separator", "case.separator", stringx.DefaultSeparator)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), stringx.Uncamelize(args[0], separator))
			return err
		},
	}

	cmd.Flags().StringP("separator", "s", stringx.DefaultSeparator, "segment separator")
	return cmd
}
