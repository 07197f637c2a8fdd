package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/replay"
	"github.com/apirek/plotutils/internal/series"
	"github.com/apirek/plotutils/internal/ui"
)

var plotFields fieldsel.List

// tail -f metrics.tsv | plotutils plot -w 60 -y temperature
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "plot a time-series stream in the terminal",
	Long: "Read delimited rows from stdin, first selected field a timestamp, the\n" +
		"rest numeric series, and render them as live charts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeLayout, err := cmd.Flags().GetString("timefmt")
		if err != nil {
			return err
		}
		window, err := cmd.Flags().GetFloat64("window")
		if err != nil {
			return err
		}
		labels, err := cmd.Flags().GetStringArray("ylabel")
		if err != nil {
			return err
		}
		absTime, err := cmd.Flags().GetBool("abstime")
		if err != nil {
			return err
		}

		// Stdin carries the data, so key input needs the terminal directly.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return errors.Wrap(err, "plot needs a terminal for key input")
		}
		defer tty.Close()

		// Redirect log output to a file so it doesn't interfere with TUI.
		logFile, err := os.CreateTemp("", "plotutils-*.log")
		if err == nil {
			log.SetOutput(logFile)
			defer logFile.Close()
		}

		buf := series.NewBuffer()
		rd := ui.NewReader(os.Stdin, buf, ui.ReaderOptions{
			Delimiter:  viper.GetString("delimiter"),
			Fields:     plotFields,
			TimeLayout: timeLayout,
		})
		rowCh := rd.Start()

		model := ui.New(buf, rowCh, ui.Options{
			TimeLayout: timeLayout,
			Window:     window,
			Labels:     labels,
			AbsTime:    absTime,
		})
		prog := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithInput(tty),
			tea.WithContext(cmd.Context()),
		)

		if _, err := prog.Run(); err != nil {
			if cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			return err
		}
		return nil
	},
}

func init() {
	plotCmd.Flags().StringP("timefmt", "t", replay.DefaultTimeLayout, "timestamp layout (Go reference time)")
	plotCmd.Flags().Float64P("window", "w", 0, "display window in seconds, 0 keeps everything")
	plotCmd.Flags().StringArrayP("ylabel", "y", nil, "series label (repeatable)")
	plotCmd.Flags().Bool("abstime", false, "label the time axis with wall-clock times instead of ages")
	plotCmd.Flags().VarP(&plotFields, "field", "f", "field index or range, starting from 0 (repeatable)")
	RootCmd.AddCommand(plotCmd)
}
