// Package installer sequences the installation pass of aggregate
// targets: it drives the aggregators, feeds their output to the
// artifact generators, and writes every support file into the
// sandbox.
//
// One pass per target runs strictly sequentially (bridge support must
// exist before resource aggregation). Passes for distinct targets
// share no mutable state and run concurrently via InstallAll.
package installer

import (
	"context"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"github.com/Aricalhe/podbundle/pkg/aggregation"
	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/generators"
	"github.com/Aricalhe/podbundle/pkg/logging"
	"github.com/Aricalhe/podbundle/pkg/paths"
	"github.com/Aricalhe/podbundle/pkg/settings"
	"github.com/Aricalhe/podbundle/pkg/types"
)

// Options control the optional parts of an installation pass.
type Options struct {
	// BridgeSupport enables bridge-support metadata generation
	BridgeSupport bool

	// Parallel bounds the number of concurrent target passes in
	// InstallAll; zero or negative means unbounded
	Parallel int
}

// Installer runs installation passes for aggregate targets.
type Installer struct {
	fs       types.FS
	sandbox  *paths.Sandbox
	provider SettingsProvider
	opts     Options
}

// New creates an installer writing into the given sandbox. A nil
// provider defaults to empty base settings.
func New(filesystem types.FS, sandbox *paths.Sandbox, provider SettingsProvider, opts Options) *Installer {
	if provider == nil {
		provider = EmptySettings{}
	}
	return &Installer{
		fs:       filesystem,
		sandbox:  sandbox,
		provider: provider,
		opts:     opts,
	}
}

// pass carries the mutable state of one installation pass between
// steps.
type pass struct {
	target *types.AggregateTarget
	group  *SupportFilesGroup

	// bridgeSupportRef is the ${PODS_ROOT} reference of the generated
	// bridge-support artifact, set by createBridgeSupport and consumed
	// by createCopyResourcesScript
	bridgeSupportRef string
}

// Install runs one installation pass for the target and returns the
// support-files group listing every artifact written. The first
// failing step aborts the pass; artifacts are regenerated wholesale on
// the next invocation, so no rollback happens here.
func (i *Installer) Install(ctx context.Context, target *types.AggregateTarget) (*SupportFilesGroup, error) {
	logger := logging.GetLogger("installer").With().
		Str("target", target.Name).
		Logger()
	done := logging.LogOperationStart(logger, "install")
	defer done()

	p := &pass{target: target}
	for _, spec := range stepTable {
		if !spec.when(target, i.opts) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug().Str("step", spec.name).Msg("Running step")
		if err := spec.run(i, p); err != nil {
			logger.Error().Err(err).Str("step", spec.name).Msg("Step failed")
			return nil, err
		}
	}
	return p.group, nil
}

// InstallAll runs one pass per target. Targets are independent, so the
// passes run concurrently; each target still executes its own steps
// sequentially. The first failure cancels the remaining passes.
func (i *Installer) InstallAll(ctx context.Context, targets []*types.AggregateTarget) (map[string]*SupportFilesGroup, error) {
	groups := make([]*SupportFilesGroup, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	if i.opts.Parallel > 0 {
		g.SetLimit(i.opts.Parallel)
	}
	for idx, target := range targets {
		idx, target := idx, target
		g.Go(func() error {
			group, err := i.Install(ctx, target)
			if err != nil {
				return err
			}
			groups[idx] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byTarget := make(map[string]*SupportFilesGroup, len(targets))
	for _, group := range groups {
		byTarget[group.TargetName()] = group
	}
	return byTarget, nil
}

// addTarget validates the target's structural invariants before
// anything is written.
func (i *Installer) addTarget(p *pass) error {
	return p.target.Validate()
}

func (i *Installer) createSupportDir(p *pass) error {
	dir := i.sandbox.SupportFilesDir(p.target.Name)
	if err := i.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating support dir %q", dir)
	}
	return nil
}

func (i *Installer) createSupportGroup(p *pass) error {
	p.group = NewSupportFilesGroup(p.target.Name)
	return nil
}

func (i *Installer) createXCConfig(p *pass) error {
	for _, configName := range p.target.ConfigurationNames() {
		base, err := i.provider.BaseSettings(p.target, configName)
		if err != nil {
			return err
		}
		merged := settings.MergeAggregate(base)
		gen := &generators.XCConfig{
			TargetName: p.target.Name,
			ConfigName: configName,
			Settings:   merged,
		}
		if err := i.writeArtifact(p, gen, 0644); err != nil {
			return err
		}
		p.target.SetXCConfig(configName, merged)
	}
	return nil
}

func (i *Installer) createInfoPlist(p *pass) error {
	return i.writeArtifact(p, &generators.InfoPlist{TargetName: p.target.Name}, 0644)
}

func (i *Installer) createModuleMap(p *pass) error {
	return i.writeArtifact(p, &generators.ModuleMap{TargetName: p.target.Name}, 0644)
}

func (i *Installer) createUmbrellaHeader(p *pass) error {
	return i.writeArtifact(p, &generators.UmbrellaHeader{TargetName: p.target.Name}, 0644)
}

func (i *Installer) createEmbedFrameworksScript(p *pass) error {
	byConfig, err := aggregation.FrameworksByConfig(p.target, i.sandbox)
	if err != nil {
		return err
	}
	gen := &generators.EmbedFrameworksScript{
		TargetName:         p.target.Name,
		FrameworksByConfig: byConfig,
	}
	return i.writeArtifact(p, gen, 0755)
}

func (i *Installer) createBridgeSupport(p *pass) error {
	var headers []string
	for _, pt := range p.target.PodTargets {
		for _, fa := range pt.FileAccessors {
			headers = append(headers, fa.PublicHeaders...)
		}
	}
	gen := &generators.BridgeSupport{
		TargetName: p.target.Name,
		Headers:    headers,
	}
	if err := i.writeArtifact(p, gen, 0644); err != nil {
		return err
	}

	ref, err := i.sandbox.PodsRootRef(i.sandbox.SupportFile(p.target.Name, gen.Name()))
	if err != nil {
		return err
	}
	p.bridgeSupportRef = ref
	return nil
}

func (i *Installer) createCopyResourcesScript(p *pass) error {
	byConfig, err := aggregation.ResourcesByConfig(p.target, i.sandbox, p.bridgeSupportRef)
	if err != nil {
		return err
	}
	gen := &generators.CopyResourcesScript{
		TargetName:        p.target.Name,
		Platform:          p.target.Platform,
		ResourcesByConfig: byConfig,
	}
	return i.writeArtifact(p, gen, 0755)
}

func (i *Installer) createAcknowledgements(p *pass) error {
	var accessors []*types.FileAccessor
	for _, pt := range p.target.PodTargets {
		accessors = append(accessors, pt.FileAccessors...)
	}
	if err := i.writeArtifact(p, &generators.AcknowledgementsPlist{
		TargetName: p.target.Name,
		Accessors:  accessors,
	}, 0644); err != nil {
		return err
	}
	return i.writeArtifact(p, &generators.AcknowledgementsMarkdown{
		TargetName: p.target.Name,
		Accessors:  accessors,
	}, 0644)
}

func (i *Installer) createDummySource(p *pass) error {
	return i.writeArtifact(p, &generators.DummySource{TargetName: p.target.Name}, 0644)
}

// writeArtifact serializes a generator's artifact into the target's
// support-files directory and registers the path with the pass's
// group.
func (i *Installer) writeArtifact(p *pass, gen generators.Generator, perm fs.FileMode) error {
	content, err := gen.Generate()
	if err != nil {
		return errors.Wrapf(err, errors.ErrGeneratorWrite, "generating %q", gen.Name())
	}
	path := i.sandbox.SupportFile(p.target.Name, gen.Name())
	if err := i.fs.WriteFile(path, content, perm); err != nil {
		return errors.Wrapf(err, errors.ErrGeneratorWrite, "writing %q", path).
			WithDetail("target", p.target.Name)
	}
	p.group.Register(path)
	return nil
}
