// Command sai-attrgen writes the SAI attribute schema document: every object
// type of the metadata catalog with its attributes, their flags, canonical C
// types, allowed object types and enum values.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/sai-challenger/sai-attrgen/internal/config"
	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
	"github.com/sai-challenger/sai-attrgen/pkg/schema"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fs := flag.NewFlagSet("sai-attrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "YAML catalog to read instead of the embedded SAI catalog")
	fs.TextVar(&cfg.Format, "format", cfg.Format, "output format: json, cbor or yaml")
	fs.BoolVar(&cfg.Indent, "indent", cfg.Indent, "indent JSON output")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "object types built concurrently")
	fs.BoolVar(&cfg.Validate, "validate", cfg.Validate, "validate the document against the meta-schema before writing it")
	fs.BoolVar(&cfg.ObjectEnums, "object-enums", cfg.ObjectEnums, "add each object type's attribute id enum")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	output := fs.String("o", "", "output file (default stdout)")
	printMeta := fs.Bool("print-meta-schema", false, "write the JSON Schema of the document and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Check(); err != nil {
		return err
	}

	logger := newLogger(stderr, cfg).With(slog.String("run_id", uuid.NewString()))

	if *printMeta {
		data, err := schema.MetaSchemaJSON()
		if err != nil {
			return err
		}
		return write(*output, stdout, data)
	}

	cat, err := loadCatalog(cfg.Catalog, logger)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		slog.String("catalog", catalogName(cfg.Catalog)),
		slog.Int("object_types", len(cat.ObjectTypes)-1))

	gen := schema.NewGenerator(
		schema.WithWorkers(cfg.Workers),
		schema.WithObjectEnums(cfg.ObjectEnums),
		schema.WithLogger(logger))
	doc, err := gen.GenerateContext(ctx, cat)
	if err != nil {
		return fmt.Errorf("generating schema: %w", err)
	}

	if cfg.Validate {
		v, err := schema.NewValidator()
		if err != nil {
			return err
		}
		if err := v.Validate(doc); err != nil {
			return err
		}
		logger.Info("document valid")
	}

	data, err := schema.Marshal(doc, cfg.Format, cfg.Indent)
	if err != nil {
		return err
	}
	if err := write(*output, stdout, data); err != nil {
		return err
	}

	logger.Info("schema written",
		slog.Int("object_types", len(doc)),
		slog.String("format", string(cfg.Format)),
		slog.Int("bytes", len(data)))
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadCatalog(path string, logger *slog.Logger) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.Load(path, catalog.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func catalogName(path string) string {
	if path == "" {
		return "embedded:" + catalog.DefaultCatalogName
	}
	return path
}

// write sends data to path, or to stdout when path is empty. Nothing is
// written unless generation succeeded.
func write(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
