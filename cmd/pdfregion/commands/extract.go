package commands

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/ocr"
	"github.com/pyhub-apps/pdfregion/pkg/pdf"
)

var (
	scale     float64
	imagesDir string
	ocrLang   string
)

func init() {
	extractCmd.Flags().Float64Var(&scale, "scale", 0, "device pixels per PDF point the pages were displayed at (default from config)")
	extractCmd.Flags().StringVar(&imagesDir, "images", "", "directory of rendered pages named page-<n>.png to OCR instead of reading the text layer")
	extractCmd.Flags().StringVar(&ocrLang, "lang", "eng", "OCR language(s), \"+\" separated")
}

var extractCmd = &cobra.Command{
	Use:   "extract <pdf> <script.yaml>",
	Short: "Replays a script and prints the text inside every exported region",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scale <= 0 {
			scale = cfg.Scale
		}

		doc, report, err := runScript(cmd, args[0], args[1])
		if err != nil {
			return err
		}
		defer doc.Close()

		if report == nil {
			log.Warn("no regions to extract")
			return nil
		}

		read := textLayerReader(doc)
		if imagesDir != "" {
			client, err := ocr.New()
			if err != nil {
				return err
			}
			defer client.Close()
			if err := client.SetLanguage(ocrLang); err != nil {
				return err
			}
			if err := client.SetPageSegMode(ocr.PSM_SINGLE_BLOCK); err != nil {
				return err
			}
			read = ocrReader(client)
		}

		out := cmd.OutOrStdout()
		for i, e := range report.Entries {
			text, err := read(e)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{"selection": i + 1, "page": e.Page}).Warn("could not read region")
				continue
			}
			fmt.Fprintf(out, "Selection %d (Page %d): %s\n", i+1, e.Page, text)
		}
		return nil
	},
}

type regionReader func(export.Entry) (string, error)

func textLayerReader(doc pdf.Document) regionReader {
	return func(e export.Entry) (string, error) {
		return doc.RegionText(e.Page, pdf.BoundingBoxFromCorners(e.Coordinates, scale))
	}
}

func ocrReader(client *ocr.Client) regionReader {
	pages := map[int]image.Image{}
	return func(e export.Entry) (string, error) {
		img, ok := pages[e.Page]
		if !ok {
			var err error
			if img, err = loadPageImage(e.Page); err != nil {
				return "", err
			}
			pages[e.Page] = img
		}
		return client.RecognizeRegion(img, e.Coordinates, 1)
	}
}

func loadPageImage(page int) (image.Image, error) {
	f, err := os.Open(filepath.Join(imagesDir, fmt.Sprintf("page-%d.png", page)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page %d image: %w", page, err)
	}
	return img, nil
}
