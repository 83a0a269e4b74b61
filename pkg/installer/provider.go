package installer

import (
	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/types"
)

// SettingsProvider resolves the base build settings for one
// configuration of an aggregate target. The base merge itself happens
// upstream; the installer only layers the aggregate overrides on top.
type SettingsProvider interface {
	BaseSettings(target *types.AggregateTarget, configName string) (types.SettingsMap, error)
}

// EmptySettings is a SettingsProvider that resolves every
// configuration to an empty base.
type EmptySettings struct{}

func (EmptySettings) BaseSettings(*types.AggregateTarget, string) (types.SettingsMap, error) {
	return types.SettingsMap{}, nil
}

// StaticSettings resolves base settings from a fixed map keyed by
// configuration name. A declared configuration with no entry is a
// MissingConfiguration error, which aborts the pass.
type StaticSettings map[string]types.SettingsMap

func (s StaticSettings) BaseSettings(target *types.AggregateTarget, configName string) (types.SettingsMap, error) {
	base, ok := s[configName]
	if !ok {
		return nil, errors.Newf(errors.ErrMissingConfiguration,
			"no base settings for configuration %q", configName).
			WithDetail("target", target.Name)
	}
	return base, nil
}
