package build

import (
	"context"
	"fmt"
	"sort"

	"github.com/goplus/vspec/formula"
	"github.com/goplus/vspec/internal/ctxlog"
	"github.com/goplus/vspec/pkgs/buildsys"
	"github.com/goplus/vspec/pkgs/buildsys/autotools"
	"github.com/goplus/vspec/pkgs/buildsys/cmake"
	"github.com/goplus/vspec/pkgs/mod/versions"
	"github.com/goplus/vspec/pkgs/variant"
)

// DefaultBuildSystem is used when Options.BuildSystem is empty.
const DefaultBuildSystem = "cmake"

// Options describes one configure invocation.
type Options struct {
	Formula *formula.Formula
	// Overrides are applied on top of the variant defaults.
	Overrides variant.Assignment
	Manifest  *versions.Manifest
	Table     buildsys.Table
	// Prefix is the install root; when empty the manifest prefix is used.
	Prefix      string
	BuildSystem string
}

// Plan is the outcome of resolving a formula for one build.
type Plan struct {
	Formula     string
	BuildSystem string
	Assignment  variant.Assignment
	Deps        []formula.Dependency
	Args        []string
	// Key identifies Args for downstream build caches.
	Key string
}

// Builder turns Options into Plans for the registered build systems.
type Builder struct {
	systems map[string]buildsys.BuildSystem
}

// NewBuilder creates a Builder that knows CMake and Autotools.
func NewBuilder() *Builder {
	b := &Builder{systems: map[string]buildsys.BuildSystem{}}
	b.Register(cmake.New())
	b.Register(autotools.New())
	return b
}

// Register adds bs under bs.Name(), replacing any previous one.
func (b *Builder) Register(bs buildsys.BuildSystem) {
	b.systems[bs.Name()] = bs
}

// Systems returns the names of the registered build systems, sorted.
func (b *Builder) Systems() []string {
	names := make([]string, 0, len(b.systems))
	for name := range b.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the build system registered as name.
func (b *Builder) Lookup(name string) (buildsys.BuildSystem, error) {
	if name == "" {
		name = DefaultBuildSystem
	}
	bs, ok := b.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown build system %q (have %v)", name, b.Systems())
	}
	return bs, nil
}

// Resolve completes the variant assignment of opts and selects the
// dependencies it needs.
func (b *Builder) Resolve(ctx context.Context, opts Options) (variant.Assignment, []formula.Dependency, error) {
	logger := ctxlog.FromContext(ctx)

	a, err := opts.Formula.Assign(opts.Overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to assign variants: %w", err)
	}
	deps, err := opts.Formula.Resolve(a)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	logger.Debug("Resolved dependencies", "formula", opts.Formula.Name, "variants", a.String(), "count", len(deps))
	return a, deps, nil
}

// Plan resolves opts and generates the configure arguments.
func (b *Builder) Plan(ctx context.Context, opts Options) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	bs, err := b.Lookup(opts.BuildSystem)
	if err != nil {
		return nil, err
	}
	if opts.Manifest == nil {
		return nil, fmt.Errorf("no resolution manifest given")
	}
	if opts.Manifest.Formula != "" && opts.Manifest.Formula != opts.Formula.Name {
		logger.Warn("Manifest was written for another formula",
			"formula", opts.Formula.Name, "manifest", opts.Manifest.Formula)
	}

	a, deps, err := b.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := opts.Manifest.Check(deps); err != nil {
		return nil, err
	}

	names, err := opts.Table.For(bs.Name())
	if err != nil {
		return nil, err
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = opts.Manifest.Prefix
	}

	args, err := buildsys.Generate(bs, &buildsys.Input{
		Formula:    opts.Formula,
		Assignment: a,
		Paths:      opts.Manifest.Paths(),
		Prefix:     prefix,
		Names:      names,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s arguments: %w", bs.Name(), err)
	}

	plan := &Plan{
		Formula:     opts.Formula.Name,
		BuildSystem: bs.Name(),
		Assignment:  a,
		Deps:        deps,
		Args:        args,
		Key:         cacheKey(bs.Name(), args),
	}
	logger.Info("Generated build arguments",
		"formula", plan.Formula, "build_system", plan.BuildSystem, "args", len(args), "key", plan.Key)
	return plan, nil
}
