package types

import (
	"github.com/Aricalhe/podbundle/pkg/errors"
)

// AggregateTarget represents a build product that bundles multiple pod
// targets into one consumable unit. One installation pass runs per
// aggregate target.
type AggregateTarget struct {
	// Name is the target name (e.g. "Pods-App")
	Name string

	// Platform the target is built for
	Platform Platform

	// BuildConfigurations maps configuration name to its kind
	// ("debug" or "release")
	BuildConfigurations map[string]string

	// PodTargets are the library targets bundled into this target,
	// in stable upstream order
	PodTargets []*PodTarget

	// RequiresFrameworks is true when pods integrate as dynamic
	// frameworks rather than static libraries
	RequiresFrameworks bool

	// RequiresHostTarget is true when this target is embedded inside
	// another target (e.g. an app extension host). Frameworks must
	// never be embedded a second level deep, so embedding artifacts
	// are suppressed for such targets.
	RequiresHostTarget bool

	// XCConfigs holds the parsed settings of each generated xcconfig,
	// keyed by configuration name. Populated during installation and
	// read by later integration consumers.
	XCConfigs map[string]SettingsMap
}

// Validate checks the structural invariants of the target: at least one
// build configuration, no duplicate pod target names.
func (t *AggregateTarget) Validate() error {
	if t.Name == "" {
		return errors.New(errors.ErrTargetInvalid, "aggregate target has no name")
	}
	if !t.Platform.Valid() {
		return errors.Newf(errors.ErrTargetInvalid, "unknown platform %q", t.Platform).
			WithDetail("target", t.Name)
	}
	if len(t.BuildConfigurations) == 0 {
		return errors.Newf(errors.ErrTargetInvalid, "target %q declares no build configurations", t.Name)
	}
	seen := make(map[string]bool, len(t.PodTargets))
	for _, pt := range t.PodTargets {
		if seen[pt.Name] {
			return errors.Newf(errors.ErrTargetInvalid, "duplicate pod target %q", pt.Name).
				WithDetail("target", t.Name)
		}
		seen[pt.Name] = true
	}
	return nil
}

// ConfigurationNames returns the declared configuration names in
// lexical order. Iteration over BuildConfigurations is randomized by
// the runtime, so every consumer that needs reproducible output goes
// through this accessor.
func (t *AggregateTarget) ConfigurationNames() []string {
	names := make([]string, 0, len(t.BuildConfigurations))
	for name := range t.BuildConfigurations {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// SetXCConfig retains the parsed settings of a generated xcconfig for
// the given configuration.
func (t *AggregateTarget) SetXCConfig(configName string, settings SettingsMap) {
	if t.XCConfigs == nil {
		t.XCConfigs = make(map[string]SettingsMap)
	}
	t.XCConfigs[configName] = settings
}

// PodTarget represents one library target owned by an aggregate
// target.
type PodTarget struct {
	// Name is the pod target name (e.g. "BananaLib")
	Name string

	// ShouldBuild is false for pods that ship only prebuilt artifacts
	ShouldBuild bool

	// RequiresFrameworks is true when the pod builds as a dynamic
	// framework
	RequiresFrameworks bool

	// Configurations is the whitelist of configuration names this pod
	// participates in. Empty means the pod participates in every
	// configuration.
	Configurations []string

	// FileAccessors expose the pod's declared files, one per spec
	// variant
	FileAccessors []*FileAccessor
}

// ProductName returns the name of the pod's own build product.
func (pt *PodTarget) ProductName() string {
	return pt.Name + ".framework"
}
