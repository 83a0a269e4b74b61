// Package manifest reads the target manifest: a YAML description of
// the resolved target graph (aggregate targets, their pod targets, and
// each pod's declared files) produced upstream. The manifest is the
// CLI's input; library consumers construct types.AggregateTarget
// values directly.
package manifest

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/logging"
	"github.com/Aricalhe/podbundle/pkg/types"
)

// Manifest is the root of the target manifest file.
type Manifest struct {
	Targets []AggregateTarget `yaml:"targets"`
}

// AggregateTarget describes one aggregate target in the manifest.
type AggregateTarget struct {
	Name                string            `yaml:"name"`
	Platform            string            `yaml:"platform"`
	BuildConfigurations map[string]string `yaml:"build_configurations"`
	RequiresFrameworks  bool              `yaml:"requires_frameworks"`
	RequiresHostTarget  bool              `yaml:"requires_host_target"`
	Pods                []PodTarget       `yaml:"pods"`
}

// PodTarget describes one pod target in the manifest.
type PodTarget struct {
	Name               string         `yaml:"name"`
	ShouldBuild        bool           `yaml:"should_build"`
	RequiresFrameworks bool           `yaml:"requires_frameworks"`
	Configurations     []string       `yaml:"configurations"`
	FileAccessors      []FileAccessor `yaml:"file_accessors"`
}

// FileAccessor describes one pod spec's files in the manifest. File
// paths are relative to the sandbox root.
type FileAccessor struct {
	SpecName           string              `yaml:"spec_name"`
	Resources          []string            `yaml:"resources"`
	ResourceBundles    map[string][]string `yaml:"resource_bundles"`
	VendoredFrameworks []string            `yaml:"vendored_frameworks"`
	PublicHeaders      []string            `yaml:"public_headers"`
	License            string              `yaml:"license"`
}

// Load parses a manifest and converts it into aggregate targets whose
// file paths are resolved against the sandbox root. Every target is
// validated before it is returned.
func Load(fs types.FS, path, sandboxRoot string) ([]*types.AggregateTarget, error) {
	logger := logging.GetLogger("manifest")

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "reading manifest %q", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "parsing manifest %q", path)
	}
	if len(m.Targets) == 0 {
		return nil, errors.Newf(errors.ErrManifestInvalid, "manifest %q declares no targets", path)
	}

	targets := make([]*types.AggregateTarget, 0, len(m.Targets))
	for _, mt := range m.Targets {
		target := convertTarget(mt, sandboxRoot)
		if err := target.Validate(); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	logger.Info().Int("targets", len(targets)).Str("path", path).Msg("Manifest loaded")
	return targets, nil
}

func convertTarget(mt AggregateTarget, sandboxRoot string) *types.AggregateTarget {
	target := &types.AggregateTarget{
		Name:                mt.Name,
		Platform:            types.Platform(mt.Platform),
		BuildConfigurations: mt.BuildConfigurations,
		RequiresFrameworks:  mt.RequiresFrameworks,
		RequiresHostTarget:  mt.RequiresHostTarget,
	}
	for _, mp := range mt.Pods {
		pt := &types.PodTarget{
			Name:               mp.Name,
			ShouldBuild:        mp.ShouldBuild,
			RequiresFrameworks: mp.RequiresFrameworks,
			Configurations:     mp.Configurations,
		}
		for _, ma := range mp.FileAccessors {
			pt.FileAccessors = append(pt.FileAccessors, &types.FileAccessor{
				SpecName:           ma.SpecName,
				Resources:          resolveAll(sandboxRoot, ma.Resources),
				ResourceBundles:    ma.ResourceBundles,
				VendoredFrameworks: resolveAll(sandboxRoot, ma.VendoredFrameworks),
				PublicHeaders:      resolveAll(sandboxRoot, ma.PublicHeaders),
				License:            ma.License,
			})
		}
		target.PodTargets = append(target.PodTargets, pt)
	}
	return target
}

func resolveAll(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(root, p)
		}
	}
	return out
}
