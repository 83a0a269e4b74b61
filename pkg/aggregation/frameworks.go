package aggregation

import (
	"github.com/Aricalhe/podbundle/pkg/logging"
	"github.com/Aricalhe/podbundle/pkg/paths"
	"github.com/Aricalhe/podbundle/pkg/resolver"
	"github.com/Aricalhe/podbundle/pkg/types"
)

// FrameworksByConfig returns, per configuration name, the ordered list
// of dynamic framework references the embed-frameworks script must
// copy into the product. Vendored frameworks become ${PODS_ROOT}
// references; a pod that builds as a framework additionally
// contributes its own ${BUILT_PRODUCTS_DIR} product.
//
// Callers must not invoke this for a target with RequiresHostTarget
// set: embedding frameworks inside an already-embedded target is
// invalid, and the installer's step table never schedules the embed
// step for such targets.
func FrameworksByConfig(target *types.AggregateTarget, sandbox *paths.Sandbox) (map[string][]string, error) {
	logger := logging.GetLogger("aggregation.frameworks").With().
		Str("target", target.Name).
		Logger()

	byConfig := make(map[string][]string, len(target.BuildConfigurations))
	for _, configName := range target.ConfigurationNames() {
		// Each pod contributes at most one product path, so no
		// dedup pass is needed here.
		refs := []string{}
		for _, pt := range target.PodTargets {
			if !resolver.IncludedInConfiguration(pt, configName) {
				continue
			}
			for _, fa := range pt.FileAccessors {
				for _, vendored := range fa.VendoredFrameworks {
					ref, err := sandbox.PodsRootRef(vendored)
					if err != nil {
						return nil, attribute(err, pt)
					}
					refs = append(refs, ref)
				}
			}
			if pt.ShouldBuild && pt.RequiresFrameworks {
				refs = append(refs, paths.BuiltProductRef(pt.ProductName()))
			}
		}
		byConfig[configName] = refs

		logger.Debug().
			Str("configuration", configName).
			Int("frameworks", len(refs)).
			Msg("Aggregated frameworks")
	}
	return byConfig, nil
}
