package aggregation_test

import (
	"testing"

	"github.com/Aricalhe/podbundle/pkg/aggregation"
	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/paths"
	"github.com/Aricalhe/podbundle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sandboxRoot = "/project/Pods"

func newSandbox() *paths.Sandbox {
	return paths.NewSandbox(sandboxRoot)
}

func TestResourcesByConfig(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug", "Release": "release"},
		PodTargets: []*types.PodTarget{
			{
				Name: "BananaLib",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{
						sandboxRoot + "/BananaLib/Resources/banana.png",
						sandboxRoot + "/BananaLib/Resources/logo.png",
					},
					ResourceBundles: map[string][]string{
						"BananaBundle": {sandboxRoot + "/BananaLib/Assets/a.png"},
					},
				}},
			},
		},
	}

	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)

	want := []string{
		"${PODS_ROOT}/BananaLib/Resources/banana.png",
		"${PODS_ROOT}/BananaLib/Resources/logo.png",
		"${CONFIGURATION_BUILD_DIR}/BananaBundle.bundle",
	}
	assert.Equal(t, want, byConfig["Debug"])
	assert.Equal(t, want, byConfig["Release"])
}

// A pod that both should-build and requires-frameworks ships its
// resources inside the built framework and must never contribute loose
// resource entries.
func TestResourcesByConfigExcludesFrameworkPods(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug"},
		PodTargets: []*types.PodTarget{
			{
				Name: "A",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{sandboxRoot + "/A/a.png"},
				}},
			},
			{
				Name:               "B",
				ShouldBuild:        true,
				RequiresFrameworks: true,
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{sandboxRoot + "/B/b.png"},
				}},
			},
		},
	}

	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"${PODS_ROOT}/A/a.png"}, byConfig["Debug"])
}

// A should-build=false, requires-frameworks=true pod is not statically
// linked and still ships loose resources.
func TestResourcesByConfigKeepsPrebuiltFrameworkPods(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug"},
		PodTargets: []*types.PodTarget{
			{
				Name:               "Prebuilt",
				RequiresFrameworks: true,
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{sandboxRoot + "/Prebuilt/p.png"},
				}},
			},
		},
	}

	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"${PODS_ROOT}/Prebuilt/p.png"}, byConfig["Debug"])
}

func TestResourcesByConfigRespectsWhitelist(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug", "Release": "release"},
		PodTargets: []*types.PodTarget{
			{
				Name:           "DebugOnly",
				Configurations: []string{"Debug"},
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{sandboxRoot + "/DebugOnly/d.png"},
				}},
			},
		},
	}

	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"${PODS_ROOT}/DebugOnly/d.png"}, byConfig["Debug"])
	assert.Empty(t, byConfig["Release"])
	// Every declared configuration must have an entry, even an empty one.
	assert.Contains(t, byConfig, "Release")
}

func TestResourcesByConfigDeduplicates(t *testing.T) {
	shared := sandboxRoot + "/Shared/common.png"
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug"},
		PodTargets: []*types.PodTarget{
			{
				Name: "First",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{shared, sandboxRoot + "/First/f.png"},
				}},
			},
			{
				Name: "Second",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{shared},
				}},
			},
		},
	}

	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"${PODS_ROOT}/Shared/common.png",
		"${PODS_ROOT}/First/f.png",
	}, byConfig["Debug"])
}

func TestResourcesByConfigIdempotent(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug", "Release": "release"},
		PodTargets: []*types.PodTarget{
			{
				Name: "BananaLib",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{
						sandboxRoot + "/BananaLib/a.png",
						sandboxRoot + "/BananaLib/a.png",
						sandboxRoot + "/BananaLib/b.png",
					},
					ResourceBundles: map[string][]string{
						"Z": nil, "A": nil, "M": nil,
					},
				}},
			},
		},
	}

	first, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	second, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Bundle order is lexical, not map order.
	assert.Equal(t, []string{
		"${PODS_ROOT}/BananaLib/a.png",
		"${PODS_ROOT}/BananaLib/b.png",
		"${CONFIGURATION_BUILD_DIR}/A.bundle",
		"${CONFIGURATION_BUILD_DIR}/M.bundle",
		"${CONFIGURATION_BUILD_DIR}/Z.bundle",
	}, first["Debug"])
}

// The bridge-support artifact is appended once, after all pod
// contributions, in every configuration.
func TestResourcesByConfigAppendsBridgeSupport(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug", "Release": "release"},
		PodTargets: []*types.PodTarget{
			{
				Name: "BananaLib",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{sandboxRoot + "/BananaLib/a.png"},
				}},
			},
		},
	}

	bridgeRef := "${PODS_ROOT}/Target Support Files/Pods-App/Pods-App.bridgesupport"
	byConfig, err := aggregation.ResourcesByConfig(target, newSandbox(), bridgeRef)
	require.NoError(t, err)

	for _, configName := range []string{"Debug", "Release"} {
		refs := byConfig[configName]
		require.NotEmpty(t, refs, configName)
		assert.Equal(t, bridgeRef, refs[len(refs)-1], configName)

		count := 0
		for _, ref := range refs {
			if ref == bridgeRef {
				count++
			}
		}
		assert.Equal(t, 1, count, configName)
	}
}

func TestResourcesByConfigInvalidPath(t *testing.T) {
	target := &types.AggregateTarget{
		Name:                "Pods-App",
		Platform:            types.PlatformIOS,
		BuildConfigurations: map[string]string{"Debug": "debug"},
		PodTargets: []*types.PodTarget{
			{
				Name: "Escapee",
				FileAccessors: []*types.FileAccessor{{
					Resources: []string{"/outside/sandbox/file.png"},
				}},
			},
		},
	}

	_, err := aggregation.ResourcesByConfig(target, newSandbox(), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArtifactPath))
	assert.Equal(t, "Escapee", errors.GetErrorDetails(err)["pod_target"])
}
