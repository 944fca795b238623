// Package render produces the paginated PDF artifact for a finalized
// invoice/quotation document. The document arrives validated with totals
// pre-computed; this package only lays out and serializes.
package render

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/invoicepdf/internal/clock"
	"github.com/smallbiznis/invoicepdf/internal/document"
	"github.com/smallbiznis/invoicepdf/internal/document/normalize"
	"github.com/smallbiznis/invoicepdf/internal/render/layout"
	"github.com/smallbiznis/invoicepdf/internal/render/pdf"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node

	NormalizeConfig normalize.Config `optional:"true"`
}

// Renderer is safe for concurrent use; every Render call owns its cursor and
// page state exclusively.
type Renderer struct {
	log    *zap.Logger
	clock  clock.Clock
	genID  *snowflake.Node
	norm   *normalize.Normalizer
	tracer trace.Tracer
}

func NewRenderer(p Params) *Renderer {
	return &Renderer{
		log:    p.Log.Named("invoice.render"),
		clock:  p.Clock,
		genID:  p.GenID,
		norm:   normalize.New(p.NormalizeConfig),
		tracer: otel.Tracer("invoicepdf/render"),
	}
}

// Result describes a completed render. Warnings carry asset-degraded
// conditions (for example an unusable logo) that did not abort the render;
// how they are shown to a user is the caller's concern.
type Result struct {
	RenderID     string
	Filename     string
	PageCount    int
	LogoIncluded bool
	Warnings     []string
}

// Render lays out the document and returns the artifact bytes alongside the
// result metadata. A document with no line items fails before any page is
// created; any serialization failure returns an error and no partial output.
func (r *Renderer) Render(ctx context.Context, doc document.Document) (Result, []byte, error) {
	if err := doc.Validate(); err != nil {
		return Result{}, nil, err
	}

	ctx, span := r.tracer.Start(ctx, "render.invoice")
	defer span.End()

	renderID := r.genID.Generate().String()
	now := r.clock.Now()
	log := r.log.With(
		zap.String("render_id", renderID),
		zap.String("invoice_number", doc.Number),
	)

	view, warnings := r.norm.Normalize(ctx, doc)
	for _, warn := range warnings {
		log.Warn("asset degraded", zap.String("reason", warn))
	}

	eng := r.layoutPages(view, doc.DueDate.Time, now)

	data, err := pdf.Encode(eng.Pages())
	if err != nil {
		return Result{}, nil, fmt.Errorf("render invoice %s: %w", doc.Number, err)
	}

	result := Result{
		RenderID:     renderID,
		Filename:     pdf.Filename(doc.Number, now),
		PageCount:    eng.PageCount(),
		LogoIncluded: view.Logo != nil,
		Warnings:     warnings,
	}
	span.SetAttributes(
		attribute.Int("render.pages", result.PageCount),
		attribute.Bool("render.logo", result.LogoIncluded),
	)
	log.Info("invoice rendered",
		zap.Int("pages", result.PageCount),
		zap.String("filename", result.Filename),
	)
	return result, data, nil
}

// layoutPages runs the fixed section sequence against a fresh engine.
func (r *Renderer) layoutPages(view normalize.View, dueAt, now time.Time) *layout.Engine {
	eng := layout.NewEngine(layout.A4())
	j := &job{
		eng:   eng,
		view:  view,
		dueAt: dueAt,
		now:   now,
		y:     eng.Geometry().Margin,
	}
	j.run()
	return eng
}
