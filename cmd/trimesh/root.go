package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/trimesh"
	"github.com/esimov/trimesh/utils"
	"github.com/spf13/cobra"
)

// supported input extensions when the source is a directory
var extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type options struct {
	out       string
	res       string
	base      int
	levels    []int
	counts    []int
	planFile  string
	lineWidth float64
	gray      bool
	noise     int
	white     bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "trimesh <image|dir|url>",
		Short: "Convert an image into an adaptively refined triangle mesh",
		Long: `trimesh builds a coarse triangle grid over the image and bisects the triangles
lying over dark regions, pass after pass, following a plan of decreasing levels.
Every mesh edge is then drawn with the color of the image below it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "Destination file or directory (default <input>"+utils.DefaultSuffix+".png)")
	f.StringVar(&opts.res, "res", "", "Intensity resolution as WxH (default derived from the aspect ratio)")
	f.IntVar(&opts.base, "base", 1, "Base grid scaling factor")
	f.IntSliceVar(&opts.levels, "levels", nil, "Refinement levels in [1,256], strictly decreasing")
	f.IntSliceVar(&opts.counts, "counts", nil, "Refinement passes per level")
	f.StringVar(&opts.planFile, "plan", "", "YAML file with levels and counts")
	f.Float64Var(&opts.lineWidth, "width", 1, "Edge line width")
	f.BoolVar(&opts.gray, "gray", false, "Sample edge colors from the grayscale image")
	f.IntVar(&opts.noise, "noise", 0, "Noise factor")
	f.BoolVar(&opts.white, "white", false, "Draw on a white background instead of a transparent one")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log partition, resolution and every refinement pass")

	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

func parseResolution(s string) (image.Point, error) {
	if s == "" {
		return image.Point{}, nil
	}
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("%w: resolution %q, want WxH", trimesh.ErrConfiguration, s)
	}
	return image.Pt(w, h), nil
}

func newProcessor(opts *options) (*trimesh.Processor, error) {
	res, err := parseResolution(opts.res)
	if err != nil {
		return nil, err
	}
	p := &trimesh.Processor{
		Resolution: res,
		Base:       opts.base,
		Levels:     opts.levels,
		Counts:     opts.counts,
		LineWidth:  opts.lineWidth,
		Grayscale:  opts.gray,
		Noise:      opts.noise,
	}
	if opts.white {
		p.Background = color.White
	}
	if opts.planFile != "" {
		f, err := os.Open(opts.planFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if p.Plan, err = trimesh.LoadPlan(f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.planFile, err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func run(source string, opts *options) error {
	trimesh.SetLogger(newLogger(opts.verbose))

	p, err := newProcessor(opts)
	if err != nil {
		return err
	}
	jobs, err := collect(source, opts.out)
	if err != nil {
		return err
	}

	var failed int
	for _, job := range jobs {
		if err := process(p, job.in, job.out); err != nil {
			fmt.Fprintf(os.Stderr, "%sError converting image %s: %v%s\n", utils.ErrorColor, job.in, err, utils.DefaultColor)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(jobs))
	}
	return nil
}

type job struct {
	in, out string
}

// collect resolves the source into input/output pairs.
func collect(source, dest string) ([]job, error) {
	if utils.IsURL(source) {
		out, err := outputFor(source, dest)
		if err != nil {
			return nil, err
		}
		return []job{{in: source, out: out}}, nil
	}

	fs, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	if !fs.IsDir() {
		out, err := outputFor(source, dest)
		if err != nil {
			return nil, err
		}
		return []job{{in: source, out: out}}, nil
	}

	if dest == "" {
		dest = source
	}
	if dst, err := os.Stat(dest); err != nil {
		return nil, fmt.Errorf("unable to get dir stats: %w", err)
	} else if !dst.IsDir() {
		return nil, fmt.Errorf("please specify a directory as destination")
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read dir: %w", err)
	}
	var jobs []job
	claimed := make(map[string]struct{})
	taken := func(path string) bool {
		_, ok := claimed[path]
		return ok
	}
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) || generated(e.Name()) {
			continue
		}
		out, err := utils.OutputPath(filepath.Join(dest, e.Name()), utils.DefaultSuffix, ".png", taken)
		if err != nil {
			return nil, err
		}
		claimed[out] = struct{}{}
		jobs = append(jobs, job{in: filepath.Join(source, e.Name()), out: out})
	}
	return jobs, nil
}

func outputFor(source, dest string) (string, error) {
	if dest != "" {
		return dest, nil
	}
	return utils.OutputPath(source, utils.DefaultSuffix, ".png", nil)
}

// generated reports whether name looks like an output of a previous run,
// such as a_mesh.png or a_mesh-2.png.
func generated(name string) bool {
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		return false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.LastIndex(stem, "-"); i >= 0 && i < len(stem)-1 {
		if _, err := strconv.Atoi(stem[i+1:]); err == nil {
			stem = stem[:i]
		}
	}
	return strings.HasSuffix(stem, utils.DefaultSuffix)
}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func process(p *trimesh.Processor, in, out string) error {
	var file *os.File
	var err error
	if utils.IsURL(in) {
		file, err = utils.DownloadImage(in)
		if err == nil {
			defer os.Remove(file.Name())
		}
	} else {
		file, err = os.Open(in)
	}
	if err != nil {
		return err
	}
	defer file.Close()

	s := utils.NewSpinner()
	s.Start("Generating triangle mesh...")
	start := time.Now()
	res, err := p.Process(file, out)
	s.Stop()
	if err != nil {
		return err
	}

	fmt.Printf("Generated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	fmt.Printf("Total number of %s%d%s triangles and %s%d%s edges on a %dx%d partition\n",
		utils.SuccessColor, res.Mesh.NumCells(), utils.DefaultColor,
		utils.SuccessColor, len(res.Segments), utils.DefaultColor,
		res.Partition.X, res.Partition.Y)
	fmt.Printf("Saved as: %s %s✓%s\n", filepath.Base(out), utils.SuccessColor, utils.DefaultColor)
	return nil
}
