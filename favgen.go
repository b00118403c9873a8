package favgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

const defaultOutDir = "."

// Generator writes icon sets into an output directory.
type Generator struct {
	outDir string
	logger *slog.Logger
}

type Option func(*Generator) error

func WithOutDir(dir string) Option {
	return func(g *Generator) error {
		if dir == "" {
			return fmt.Errorf("output directory is empty")
		}
		g.outDir = dir
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		outDir: defaultOutDir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// OutDir returns the directory the generator writes into.
func (g *Generator) OutDir() string {
	return g.outDir
}

// Generate renders the set and writes every target. It returns the written paths in target order.
func (g *Generator) Generate(ctx context.Context, s *Set) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", g.outDir, err)
	}
	g.logger.Info("rendering", slog.String("set", s.Name), slog.Int("master_size", s.MasterSize))
	var paths []string
	for _, t := range s.Targets {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		p := filepath.Join(g.outDir, t.Name)
		b, err := s.Encode(t)
		if err != nil {
			g.logger.Error("failed to encode", slog.String("target", t.Name), slog.String("error", err.Error()))
			return paths, err
		}
		if err := os.WriteFile(p, b, 0o644); err != nil {
			g.logger.Error("failed to write", slog.String("path", p), slog.String("error", err.Error()))
			return paths, fmt.Errorf("failed to write %s: %w", p, err)
		}
		g.logger.Info("wrote file", slog.String("path", p), slog.Int("size", t.Size), slog.String("format", string(t.Format)), slog.Int("bytes", len(b)))
		paths = append(paths, p)
	}
	g.logger.Info("generate completed", slog.String("set", s.Name), slog.Int("files", len(paths)))
	return paths, nil
}
