package schema

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
)

// Option configures a Generator.
type Option func(*Generator)

// WithTypeResolver sets the resolver used for value types.
func WithTypeResolver(r *TypeResolver) Option {
	return func(g *Generator) { g.types = r }
}

// WithWorkers builds up to n object types concurrently. n <= 1 builds them
// one after the other.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// WithObjectEnums adds each object type's attribute id enum to its record.
func WithObjectEnums(enabled bool) Option {
	return func(g *Generator) { g.objectEnums = enabled }
}

// WithLogger sets the logger. Generation only logs at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// Generator produces schema documents.
type Generator struct {
	types       *TypeResolver
	workers     int
	objectEnums bool
	logger      *slog.Logger
}

// NewGenerator returns a Generator with the default type table.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.types == nil {
		g.types = NewTypeResolver(DefaultTypeTable())
	}
	return g
}

// Generate builds the document for src. The sentinel at index 0 is skipped
// and the walk stops at the first nil entry. Any error aborts generation and
// no document is returned.
func (g *Generator) Generate(src Source) (Document, error) {
	return g.GenerateContext(context.Background(), src)
}

// GenerateContext is Generate with cancellation. With more than one worker
// the first error cancels the object types not yet started.
func (g *Generator) GenerateContext(ctx context.Context, src Source) (Document, error) {
	entries := objectTypes(src.ObjectTypeInfos())

	b := NewBuilder(src, g.types)
	b.objectEnums = g.objectEnums

	doc := make(Document, len(entries))
	if g.workers <= 1 {
		for i, ot := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s, err := b.ObjectType(ot)
			if err != nil {
				return nil, err
			}
			doc[i] = s
			g.logObjectType(s)
		}
		return doc, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, ot := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := b.ObjectType(ot)
			if err != nil {
				return err
			}
			doc[i] = s
			g.logObjectType(s)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (g *Generator) logObjectType(s ObjectTypeSchema) {
	g.logger.Debug("object type built",
		slog.String("object_type", s.Name),
		slog.Int("attributes", len(s.Attributes)))
}

// objectTypes applies the catalog traversal rule: skip the sentinel at index
// 0, stop at the first nil entry.
func objectTypes(all []*catalog.ObjectTypeInfo) []*catalog.ObjectTypeInfo {
	if len(all) <= 1 {
		return nil
	}
	out := all[1:]
	for i, ot := range out {
		if ot == nil {
			return out[:i]
		}
	}
	return out
}

// Generate builds the document for src with a Generator configured by opts.
func Generate(src Source, opts ...Option) (Document, error) {
	return NewGenerator(opts...).Generate(src)
}
