package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/invoicepdf/internal/clock"
	"github.com/smallbiznis/invoicepdf/internal/document"
	"github.com/smallbiznis/invoicepdf/internal/observability/logger"
	"github.com/smallbiznis/invoicepdf/internal/render"
)

var version = "dev"

func main() {
	in := flag.String("in", "", "path to the finalized document JSON")
	out := flag.String("out", ".", "directory the PDF artifact is written into")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: invoicepdf -in document.json [-out dir]")
		os.Exit(2)
	}

	exitCode := 0
	app := fx.New(
		logger.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		render.Module,
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, r *render.Renderer, log *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := export(context.Background(), r, *in, *out); err != nil {
							log.Error("export failed", zap.Error(err))
							exitCode = 1
						}
						_ = sd.Shutdown()
					}()
					return nil
				},
			})
		}),
	)
	app.Run()
	os.Exit(exitCode)
}

func export(ctx context.Context, r *render.Renderer, inPath, outDir string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var doc document.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	result, data, err := r.Render(ctx, doc)
	if err != nil {
		return err
	}

	target := filepath.Join(outDir, result.Filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return err
	}

	for _, warn := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", warn)
	}
	fmt.Println(target)
	return nil
}
