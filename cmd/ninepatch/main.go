// Command ninepatch prints the patch grid of a nine-patch bitmap scaled to
// a given size.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ninepatch"
)

func main() {
	var (
		input   = flag.String("in", "", "nine-patch bitmap (.png or .bmp)")
		width   = flag.Int("width", 0, "target width (default: bitmap width)")
		height  = flag.Int("height", 0, "target height (default: bitmap height)")
		format  = flag.String("format", "json", "output format: json or yaml")
		verbose = flag.Bool("v", false, "log border scans to stderr")
	)
	flag.Parse()

	if *verbose {
		ninepatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Stdout, *input, *width, *height, *format); err != nil {
		log.Fatalf("ninepatch: %v", err)
	}
}

// report is the serialized result.
type report struct {
	Width   int             `json:"width" yaml:"width"`
	Height  int             `json:"height" yaml:"height"`
	Margins ninepatch.RectF `json:"margins" yaml:"margins"`
	Patches []patchReport   `json:"patches" yaml:"patches"`
}

type patchReport struct {
	Source ninepatch.RectF `json:"source" yaml:"source"`
	Target ninepatch.RectF `json:"target" yaml:"target"`
	HKind  string          `json:"hKind" yaml:"hKind"`
	VKind  string          `json:"vKind" yaml:"vKind"`
}

func run(w io.Writer, path string, width, height int, format string) error {
	if path == "" {
		return errors.New("missing -in")
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	d, err := ninepatch.FromImage(img)
	if err != nil {
		return err
	}

	if width == 0 {
		width = d.Width()
	}
	if height == 0 {
		height = d.Height()
	}
	if !d.CanScaleTo(width, height) {
		return fmt.Errorf("target %dx%d is smaller than bitmap %dx%d", width, height, d.Width(), d.Height())
	}

	return encode(w, format, newReport(d, width, height))
}

func newReport(d *ninepatch.Drawable, width, height int) report {
	patches := d.ScaleTo(width, height)
	r := report{
		Width:   width,
		Height:  height,
		Margins: d.Margins(),
		Patches: make([]patchReport, len(patches)),
	}
	for i, p := range patches {
		r.Patches[i] = patchReport{
			Source: p.Source,
			Target: p.Target,
			HKind:  p.HKind.String(),
			VKind:  p.VKind.String(),
		}
	}
	return r
}

func encode(w io.Writer, format string, r report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
