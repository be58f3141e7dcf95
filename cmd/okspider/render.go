package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/okspider/internal/config"
	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderdoc"
	"github.com/benoitkugler/okspider/spidergg"
	"github.com/benoitkugler/okspider/spiderpdf"
	"github.com/benoitkugler/okspider/spiderraster"
	"github.com/benoitkugler/okspider/spidersvg"
	"github.com/spf13/cobra"
)

// --- Render Command ---

var renderCmd = &cobra.Command{
	Use:   "render [document.xml]",
	Short: "Render a chart document",
	Long: `Render a chart document with the configured backend.
Without document, the default chart (six rows of value 1) is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("format") {
			cfg.Output.Format, _ = flags.GetString("format")
		}
		if flags.Changed("out") {
			cfg.Output.Path, _ = flags.GetString("out")
		}
		if flags.Changed("width") {
			cfg.Output.Width, _ = flags.GetInt("width")
		}
		if flags.Changed("height") {
			cfg.Output.Height, _ = flags.GetInt("height")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		var opts []spider.Option
		if len(args) == 1 {
			mode, _ := cfg.Document.Mode()
			doc, err := spiderdoc.ReadChart(args[0], mode)
			if err != nil {
				return fmt.Errorf("reading chart document: %w", err)
			}
			opts = doc.Options()
		}

		c, err := spider.NewChart(cfg.Output.Bounds(), cfg.Chart.Configuration(), opts...)
		if err != nil {
			return err
		}

		if cfg.Output.Format == "pdf" {
			if cfg.Output.Path == "" {
				return errors.New("pdf output requires a file path (--out)")
			}
			return spiderpdf.WriteChart(c, cfg.Output.Path)
		}

		write := func(out io.Writer) error { return renderTo(c, cfg.Output, out) }
		if cfg.Output.Path == "" {
			err = write(cmd.OutOrStdout())
		} else {
			err = writeFile(cfg.Output.Path, write)
		}
		if err != nil {
			return err
		}
		spider.Logger().Info("chart rendered", slog.String("format", cfg.Output.Format),
			slog.String("path", cfg.Output.Path))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("format", "f", "", "output format (png, gg, pdf, svg)")
	renderCmd.Flags().StringP("out", "o", "", "output file (default: standard output)")
	renderCmd.Flags().Int("width", 0, "output width")
	renderCmd.Flags().Int("height", 0, "output height")
}

// writeFile creates `path` and fills it with `write`.
// A failure to close the file is reported.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if errC := f.Close(); err == nil {
			err = errC
		}
	}()
	return write(f)
}

// renderTo writes the chart with one of the streaming backends.
func renderTo(c *spider.Chart, output config.OutputConfig, out io.Writer) error {
	background, err := output.BackgroundColor()
	if err != nil {
		return err
	}
	switch output.Format {
	case "png":
		img, err := spiderraster.RenderChart(c, background)
		if err != nil {
			return err
		}
		return png.Encode(out, img)
	case "gg":
		return spidergg.RenderChart(c, background, out)
	case "svg":
		return spidersvg.RenderChart(c, out)
	default:
		return fmt.Errorf("unsupported streaming format %q", output.Format)
	}
}
