package trimesh

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// DefaultLongSide is the long side of the intensity resolution derived when none is set.
const DefaultLongSide = 512

// Processor : type with processing options
type Processor struct {
	// Resolution of the intensity field. Zero derives it from the aspect ratio.
	Resolution image.Point
	// Base scales the initial grid. Zero means 1.
	Base int
	// Levels in [1, 256] and matching repeat Counts. Both nil selects the default plan.
	Levels []int
	Counts []int
	// Plan overrides Levels and Counts when set.
	Plan       RefinementPlan
	LineWidth  float64
	Grayscale  bool
	Noise      int
	Background color.Color
}

// Result holds the outcome of a triangulation.
type Result struct {
	Partition Partition
	Mesh      *Mesh
	Segments  []Segment
	Image     image.Image
}

// plan returns the configured refinement plan.
func (p *Processor) plan() (RefinementPlan, error) {
	if p.Plan != nil {
		return p.Plan, p.Plan.Validate()
	}
	if p.Levels == nil && p.Counts == nil {
		return DefaultPlan(), nil
	}
	return NewPlan(p.Levels, p.Counts)
}

func (p *Processor) base() int {
	if p.Base == 0 {
		return 1
	}
	return p.Base
}

// Validate checks the options without touching any image.
func (p *Processor) Validate() error {
	if _, err := p.plan(); err != nil {
		return err
	}
	if p.base() < 0 {
		return fmt.Errorf("%w: base %d must be positive", ErrConfiguration, p.Base)
	}
	if p.Resolution.X < 0 || p.Resolution.Y < 0 || (p.Resolution.X == 0) != (p.Resolution.Y == 0) {
		return fmt.Errorf("%w: resolution %v", ErrConfiguration, p.Resolution)
	}
	return nil
}

// Triangulate refines a mesh over src and renders its colored edges.
// Configuration is validated before any image work starts.
func (p *Processor) Triangulate(src image.Image) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	plan, err := p.plan()
	if err != nil {
		return nil, err
	}
	base := p.base()
	log := Logger()

	size := src.Bounds().Size()
	partition, err := NewPartition(size.X, size.Y, DefaultMaxPartition)
	if err != nil {
		return nil, err
	}
	res := p.Resolution
	if res == (image.Point{}) {
		res = DeriveResolution(partition, DefaultLongSide)
	}
	log.Info("partition", "partition", fmt.Sprintf("%dx%d", partition.X, partition.Y), "base", base, "resolution", res)

	field := Intensity(Resize(src, res))
	domain := partition.Scale(base)
	mesh, err := Grid(partition, base)
	if err != nil {
		return nil, err
	}
	mesh, err = Schedule(mesh, field, domain, plan)
	if err != nil {
		return nil, err
	}

	colorSrc := src
	if p.Grayscale {
		colorSrc = Grayscale(ImgToNRGBA(src))
	}
	segs, err := EdgeColors(mesh, colorSrc, domain)
	if err != nil {
		return nil, err
	}
	log.Info("mesh refined", "cells", mesh.NumCells(), "vertices", mesh.NumVertices(), "edges", len(segs))

	lineWidth := p.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	img := Render(segs, size, domain.Extent(), lineWidth, p.Background)
	if p.Noise > 0 {
		img = Noise(p.Noise, img)
	}
	return &Result{
		Partition: partition,
		Mesh:      mesh,
		Segments:  segs,
		Image:     img,
	}, nil
}

// Process decodes the source image, triangulates it and saves the result to output.
func (p *Processor) Process(file io.Reader, output string) (*Result, error) {
	if err := CheckFormat(output); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	src, _, err := LoadImage(file)
	if err != nil {
		return nil, err
	}
	res, err := p.Triangulate(src)
	if err != nil {
		return nil, err
	}
	if err := Save(res.Image, output); err != nil {
		return nil, fmt.Errorf("saving %s: %w", output, err)
	}
	return res, nil
}
