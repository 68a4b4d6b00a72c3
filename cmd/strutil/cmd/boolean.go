package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	coreerror "github.com/murtho/utility/core/error"
	"github.com/murtho/utility/utils/stringx"
)

func (a *app) boolToStringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bool-to-string <true|false>",
		Short: "Print the marker for a boolean",
		Long: `Prints the marker representing the boolean argument. Markers default to
Y and N and can be set in the [markers] config section or by flag.

Examples:
  strutil bool-to-string true                         # Y
  strutil bool-to-string false --true J --false N     # N`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[0])
			if err != nil {
				return coreerror.Wrap(err, "argument is not a boolean").
					WithCode(coreerror.CodeInvalidInput).
					WithOperation("strutil.bool-to-string").
					WithDetail("value", args[0])
			}

			marker, err := stringx.BooleanToString(value, a.markers(cmd))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), marker)
			return err
		},
	}

	addMarkerFlags(cmd)
	return cmd
}

func (a *app) stringToBoolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string-to-bool <marker>",
		Short: "Print the boolean a marker stands for",
		Long: `Prints true or false for the given marker. Any other value is an error.

Examples:
  strutil string-to-bool Y                            # true
  strutil string-to-bool J --true J --false N         # true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := stringx.StringToBoolean(args[0], a.markers(cmd))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	addMarkerFlags(cmd)
	return cmd
}

func addMarkerFlags(cmd *cobra.Command) {
	cmd.Flags().String("true", stringx.DefaultTrueMarker, "marker for true")
	cmd.Flags().String("false", stringx.DefaultFalseMarker, "marker for false")
}

// markers builds the marker map from flags, config and defaults
func (a *app) markers(cmd *cobra.Command) stringx.MarkerMap {
	return stringx.NewMarkerMap(
		a.setting(cmd, "true", "markers.true_marker", stringx.DefaultTrueMarker),
		a.setting(cmd, "false", "markers.false_marker", stringx.DefaultFalseMarker),
	)
}
