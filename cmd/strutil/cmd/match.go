package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murtho/utility/core/log"
	"github.com/murtho/utility/utils/stringx"
)

func (a *app) startsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "starts-with <haystack> <needle>",
		Short: "Check whether haystack begins with needle",
		Long: `Prints true or false. Exits with status 1 when haystack does not start
with needle, so the command can be used in shell conditions.

Examples:
  strutil starts-with "check it out" check      # true
  strutil starts-with "check it out" out        # false, exit 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printMatch(cmd, stringx.StartsWith(args[0], args[1]))
		},
	}
}

func (a *app) endsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ends-with <haystack> <needle>",
		Short: "Check whether haystack ends with needle",
		Long: `Prints true or false. Exits with status 1 when haystack does not end
with needle.

Examples:
  strutil ends-with "this works perfectly" perfectly   # true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printMatch(cmd, stringx.EndsWith(args[0], args[1]))
		},
	}
}

func (a *app) printMatch(cmd *cobra.Command, matched bool) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), matched); err != nil {
		return err
	}
	if !matched {
		a.logger.Debug("no match", log.Field("command", cmd.Name()))
		return errNoMatch
	}
	return nil
}

func (a *app) startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <value> <delimiter>",
		Short: "Print the part of value before the first delimiter",
		Long: `Prints the first segment of value split on delimiter, or the whole
value when the delimiter does not occur.

Examples:
  strutil start file.exe .                # file
  strutil start product-retail-price -    # product`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), stringx.Start(args[0], args[1]))
			return err
		},
	}
}

func (a *app) endCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "end <value> <delimiter>",
		Short: "Print the part of value after the last delimiter",
		Long: `Prints the last segment of value split on delimiter, or the whole
value when the delimiter does not occur.

Examples:
  strutil end template.html.twig .        # twig
  strutil end device-weight -             # weight`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), stringx.End(args[0], args[1]))
			return err
		},
	}
}
