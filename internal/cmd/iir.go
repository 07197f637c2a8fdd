package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/smooth"
)

var iirFields fieldsel.List

// cat metrics.tsv | plotutils iir -n 10 -f 1:
var iirCmd = &cobra.Command{
	Use:   "iir",
	Short: "apply an infinite impulse response smoother to delimited columns",
	Long: "Read delimited lines from stdin, smooth the selected columns with an\n" +
		"exponential moving average of window N and write one line per input line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := cmd.Flags().GetInt("num")
		if err != nil {
			return err
		}

		opts := smooth.Options{
			Delimiter: viper.GetString("delimiter"),
			Fields:    iirFields,
			Window:    window,
		}
		return runUntilDone(cmd.Context(), func() error {
			return smooth.Run(cmd.Context(), os.Stdin, os.Stdout, opts)
		})
	},
}

func init() {
	iirCmd.Flags().IntP("num", "n", 0, "smoothing window, at least 1")
	_ = iirCmd.MarkFlagRequired("num")
	iirCmd.Flags().VarP(&iirFields, "field", "f", "field index or range, starting from 0 (repeatable)")
	RootCmd.AddCommand(iirCmd)
}
