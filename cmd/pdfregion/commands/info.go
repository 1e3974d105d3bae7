package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfregion/pkg/pdf"
)

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Validates a PDF and prints its page sizes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := pdf.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Document has %d pages\n", doc.PageCount())
		for i := 1; i <= doc.PageCount(); i++ {
			w, h, err := doc.PageSize(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Page %d: %.2f x %.2f\n", i, w, h)
		}
		return nil
	},
}
