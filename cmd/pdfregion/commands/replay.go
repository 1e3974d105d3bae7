package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/notify"
	"github.com/pyhub-apps/pdfregion/pkg/pdf"
	"github.com/pyhub-apps/pdfregion/pkg/replay"
	"github.com/pyhub-apps/pdfregion/pkg/session"
)

var format string

func init() {
	replayCmd.Flags().StringVarP(&format, "format", "f", "", "report format: text, json or yaml (default from config)")
}

var replayCmd = &cobra.Command{
	Use:   "replay <pdf> <script.yaml>",
	Short: "Replays recorded pointer events over a PDF and prints the coordinate report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := reportFormat()
		if err != nil {
			return err
		}

		doc, report, err := runScript(cmd, args[0], args[1])
		if err != nil {
			return err
		}
		defer doc.Close()

		if report == nil {
			log.Warn("no coordinates to report")
			return nil
		}
		return report.Write(cmd.OutOrStdout(), f)
	},
}

func reportFormat() (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	return export.ParseFormat(cfg.Format)
}

// runScript opens the document, replays the script over a fresh session and
// returns the report left at the end, if any
func runScript(cmd *cobra.Command, docPath, scriptPath string) (pdf.Document, *export.Report, error) {
	doc, err := pdf.Open(docPath)
	if err != nil {
		return nil, nil, err
	}

	script, err := os.Open(scriptPath)
	if err != nil {
		doc.Close()
		return nil, nil, err
	}
	defer script.Close()

	steps, err := replay.Parse(script)
	if err != nil {
		doc.Close()
		return nil, nil, err
	}

	banner := notify.NewBanner("", cfg.Notification)
	s := session.New(doc,
		session.WithMinimumExtent(cfg.MinimumExtent),
		session.WithLogger(log),
		session.WithNotifier(banner),
	)

	report, err := replay.Run(s, steps, log)
	if err != nil {
		doc.Close()
		return nil, nil, err
	}

	if banner.Visible() {
		fmt.Fprintln(cmd.ErrOrStderr(), banner.Message())
	}
	return doc, report, nil
}
