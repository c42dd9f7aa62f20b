package glyphatlas

import (
	"context"
	"fmt"

	"github.com/gogpu/glyphatlas/internal/parallel"
	"github.com/gogpu/glyphatlas/pack"
)

// Builder bakes glyphs into an Atlas.
//
// A Builder holds only configuration; every Build owns its bitmaps, canvas
// and packer state, so one Builder may run builds on several goroutines as
// long as its rasterizer allows that.
type Builder struct {
	rast Rasterizer
	opts builderOptions
}

// NewBuilder creates a builder that rasterizes with r.
func NewBuilder(r Rasterizer, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{rast: r, opts: o}
}

// Build rasterizes runes and packs them into an atlas.
//
// Duplicate runes are rasterized once. If some glyphs cannot be packed,
// Build returns the atlas without them together with a *MissingGlyphsError.
// Any other error means no atlas was produced.
func (b *Builder) Build(ctx context.Context, runes []rune) (*Atlas, error) {
	if b.rast == nil {
		return nil, ErrNilRasterizer
	}
	glyphs, err := b.rasterize(ctx, dedupe(runes))
	if err != nil {
		return nil, err
	}
	return b.BuildGlyphs(ctx, glyphs)
}

// BuildGlyphs packs already rasterized glyphs into an atlas.
// Error semantics match Build.
func (b *Builder) BuildGlyphs(ctx context.Context, glyphs []Glyph) (*Atlas, error) {
	for i := range glyphs {
		g := &glyphs[i]
		if g.Width < 0 || g.Height < 0 || len(g.Pix) != g.Width*g.Height {
			return nil, fmt.Errorf("%w: glyph %U is %dx%d with %d bytes", ErrBitmapSize, g.Rune, g.Width, g.Height, len(g.Pix))
		}
	}

	reqs := b.requests(glyphs)
	w, h := b.canvasSize(reqs)
	log := Logger()

	var results []pack.Result
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		results, err = pack.Pack(w, h, reqs, pack.WithFit(b.opts.fit), pack.WithStrategy(b.opts.strategy))
		if err != nil {
			return nil, fmt.Errorf("glyphatlas: pack: %w", err)
		}

		placed := pack.Placed(results)
		log.Debug("glyphatlas: pack attempt",
			"width", w, "height", h,
			"placed", placed, "failed", len(results)-placed,
			"strategy", b.opts.strategy.String())

		if placed == len(results) || !b.opts.grow {
			break
		}
		nw, nh, ok := growCanvas(w, h, b.opts.maxCanvas)
		if !ok {
			break
		}
		w, h = nw, nh
	}

	atlas, err := assemble(w, h, glyphs, results)
	if err != nil {
		return nil, err
	}

	log.Info("glyphatlas: atlas built",
		"width", w, "height", h,
		"glyphs", len(atlas.Glyphs), "missing", len(atlas.Missing),
		"utilization", atlas.Utilization())

	if len(atlas.Missing) > 0 {
		log.Warn("glyphatlas: glyphs left out of atlas", "count", len(atlas.Missing))
		return atlas, &MissingGlyphsError{Runes: atlas.Missing, CanvasWidth: w, CanvasHeight: h}
	}
	return atlas, nil
}

// requests derives one pack request per glyph. Padding is added only to
// glyphs with pixels so that blank glyphs stay free.
func (b *Builder) requests(glyphs []Glyph) []pack.Request {
	reqs := make([]pack.Request, len(glyphs))
	for i := range glyphs {
		g := &glyphs[i]
		reqs[i] = pack.Request{ID: i}
		if !g.Empty() {
			reqs[i].Width = g.Width + b.opts.padding
			reqs[i].Height = g.Height + b.opts.padding
		}
	}
	return reqs
}

// canvasSize returns the fixed size when set, otherwise a power-of-two
// size for the total request area that is also larger than the biggest
// request on each axis.
func (b *Builder) canvasSize(reqs []pack.Request) (w, h int) {
	if b.opts.width > 0 && b.opts.height > 0 {
		return b.opts.width, b.opts.height
	}

	area, maxW, maxH := 0, 0, 0
	for _, r := range reqs {
		area += r.Width * r.Height
		maxW = max(maxW, r.Width)
		maxH = max(maxH, r.Height)
	}

	w, h = SizeForArea(area, b.opts.maxCanvas)
	// +1: the strict fit needs a region larger than the request.
	w = max(w, NextPowerOfTwo(maxW+1))
	h = max(h, NextPowerOfTwo(maxH+1))
	return w, h
}

// assemble blits every placed glyph and collects the metadata.
func assemble(w, h int, glyphs []Glyph, results []pack.Result) (*Atlas, error) {
	canvas := NewCanvas(w, h)
	infos := make([]GlyphInfo, 0, len(glyphs))
	var missing []rune

	for i, res := range results {
		g := &glyphs[res.ID]
		if !res.Placed {
			missing = append(missing, g.Rune)
			continue
		}
		if !g.Empty() {
			if err := canvas.Blit(res.X, res.Y, g.Width, g.Height, g.Pix); err != nil {
				return nil, fmt.Errorf("glyphatlas: glyph %d (%U): %w", i, g.Rune, err)
			}
		}
		infos = append(infos, GlyphInfo{
			Rune:     g.Rune,
			X:        res.X,
			Y:        res.Y,
			Width:    g.Width,
			Height:   g.Height,
			BearingX: g.BearingX,
			BearingY: g.BearingY,
			Advance:  g.Advance,
		})
	}

	return NewAtlas(canvas, infos, missing), nil
}

// rasterize renders every rune, in parallel when the rasterizer can be
// cloned and more than one worker is configured. Output order matches runes.
func (b *Builder) rasterize(ctx context.Context, runes []rune) ([]Glyph, error) {
	glyphs := make([]Glyph, len(runes))

	cloner, ok := b.rast.(Cloner)
	if !ok || b.opts.workers == 1 || len(runes) < 2 {
		for i, r := range runes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			g, err := b.rast.Rasterize(r)
			if err != nil {
				return nil, fmt.Errorf("glyphatlas: rasterize %U: %w", r, err)
			}
			glyphs[i] = g
		}
		return glyphs, nil
	}

	pool := parallel.NewWorkerPool(b.opts.workers)
	defer pool.Close()

	rasts := make([]Rasterizer, pool.Workers())
	for i := range rasts {
		r, err := cloner.Clone()
		if err != nil {
			return nil, fmt.Errorf("glyphatlas: clone rasterizer: %w", err)
		}
		rasts[i] = r
	}
	Logger().Debug("glyphatlas: parallel rasterization", "workers", len(rasts), "glyphs", len(runes))

	errs := make([]error, len(runes))
	tasks := make([]parallel.Task, len(runes))
	for i, r := range runes {
		tasks[i] = func(worker int) {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			g, err := rasts[worker].Rasterize(r)
			if err != nil {
				errs[i] = fmt.Errorf("glyphatlas: rasterize %U: %w", r, err)
				return
			}
			glyphs[i] = g
		}
	}
	pool.ExecuteAll(tasks)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return glyphs, nil
}

// dedupe drops repeated runes, keeping the first occurrence.
func dedupe(runes []rune) []rune {
	seen := make(map[rune]struct{}, len(runes))
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
