package aggregation

import (
	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/logging"
	"github.com/Aricalhe/podbundle/pkg/paths"
	"github.com/Aricalhe/podbundle/pkg/resolver"
	"github.com/Aricalhe/podbundle/pkg/types"
)

// ResourcesByConfig returns, per configuration name, the ordered,
// deduplicated list of resource references the copy-resources script
// must install.
//
// Pods that build as frameworks are skipped: their resources are
// packaged inside the built framework. Loose resource paths become
// ${PODS_ROOT} references; resource bundles become
// ${CONFIGURATION_BUILD_DIR} references with shell-escaped names.
// bridgeSupportRef, when non-empty, is appended after all pod
// contributions in every configuration.
func ResourcesByConfig(target *types.AggregateTarget, sandbox *paths.Sandbox, bridgeSupportRef string) (map[string][]string, error) {
	logger := logging.GetLogger("aggregation.resources").With().
		Str("target", target.Name).
		Logger()

	byConfig := make(map[string][]string, len(target.BuildConfigurations))
	for _, configName := range target.ConfigurationNames() {
		var refs []string
		for _, pt := range target.PodTargets {
			if resolver.LinksStatically(pt) {
				continue
			}
			if !resolver.IncludedInConfiguration(pt, configName) {
				continue
			}
			podRefs, err := podResourceRefs(pt, sandbox)
			if err != nil {
				return nil, err
			}
			refs = append(refs, podRefs...)
		}
		if bridgeSupportRef != "" {
			refs = append(refs, bridgeSupportRef)
		}
		byConfig[configName] = dedupe(refs)

		logger.Debug().
			Str("configuration", configName).
			Int("resources", len(byConfig[configName])).
			Msg("Aggregated resources")
	}
	return byConfig, nil
}

// podResourceRefs collects one pod target's resource references in
// declaration order: loose resources first, then resource bundles.
func podResourceRefs(pt *types.PodTarget, sandbox *paths.Sandbox) ([]string, error) {
	var refs []string
	for _, fa := range pt.FileAccessors {
		for _, res := range fa.Resources {
			ref, err := sandbox.PodsRootRef(res)
			if err != nil {
				return nil, attribute(err, pt)
			}
			refs = append(refs, ref)
		}
		for _, bundleName := range fa.BundleNames() {
			refs = append(refs, paths.BundleRef(bundleName))
		}
	}
	return refs, nil
}

// dedupe removes exact duplicates while preserving first-seen order.
func dedupe(refs []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		out = append(out, ref)
	}
	return out
}

// attribute stamps the offending pod target onto a path error.
func attribute(err error, pt *types.PodTarget) error {
	var podErr *errors.PodbundleError
	if e, ok := err.(*errors.PodbundleError); ok {
		podErr = e
	} else {
		podErr = errors.Wrap(err, errors.ErrInvalidArtifactPath, "invalid artifact path")
	}
	return podErr.WithDetail("pod_target", pt.Name)
}
