package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/replay"
)

var replayFields fieldsel.List

// plotutils replay -f 0 -f 3: recording.tsv | plotutils plot
var replayCmd = &cobra.Command{
	Use:   "replay FILE...",
	Short: "replay time-series files at their original cadence",
	Long: "Re-emit rows from recorded delimited files, paced by the timestamp in\n" +
		"the first selected field and rewritten to the current wall clock.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeLayout, err := cmd.Flags().GetString("timefmt")
		if err != nil {
			return err
		}

		opts := replay.Options{
			Delimiter:  viper.GetString("delimiter"),
			Fields:     replayFields,
			TimeLayout: timeLayout,
			Files:      args,
		}
		return runUntilDone(cmd.Context(), func() error {
			return replay.Run(cmd.Context(), os.Stdout, opts)
		})
	},
}

func init() {
	replayCmd.Flags().StringP("timefmt", "t", replay.DefaultTimeLayout, "timestamp layout (Go reference time)")
	replayCmd.Flags().VarP(&replayFields, "field", "f", "field index or range, starting from 0 (repeatable)")
	RootCmd.AddCommand(replayCmd)
}
