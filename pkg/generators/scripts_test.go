package generators_test

import (
	"strings"
	"testing"

	"github.com/Aricalhe/podbundle/pkg/generators"
	"github.com/Aricalhe/podbundle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyResourcesScript(t *testing.T) {
	gen := &generators.CopyResourcesScript{
		TargetName: "Pods-App",
		Platform:   types.PlatformIOS,
		ResourcesByConfig: map[string][]string{
			"Release": {"${PODS_ROOT}/BananaLib/banana.png"},
			"Debug": {
				"${PODS_ROOT}/BananaLib/banana.png",
				"${CONFIGURATION_BUILD_DIR}/BananaBundle.bundle",
			},
		},
	}

	assert.Equal(t, "Pods-App-resources.sh", gen.Name())

	content, err := gen.Generate()
	require.NoError(t, err)
	script := string(content)

	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, `case "${CONFIGURATION}" in`)
	assert.Contains(t, script, `install_resource "${PODS_ROOT}/BananaLib/banana.png"`)
	assert.Contains(t, script, `install_resource "${CONFIGURATION_BUILD_DIR}/BananaBundle.bundle"`)

	// Configurations are emitted in lexical order.
	assert.Less(t, strings.Index(script, "Debug)"), strings.Index(script, "Release)"))
}

func TestCopyResourcesScriptDeterministic(t *testing.T) {
	gen := &generators.CopyResourcesScript{
		TargetName: "Pods-App",
		Platform:   types.PlatformIOS,
		ResourcesByConfig: map[string][]string{
			"Debug":   {"${PODS_ROOT}/a.png"},
			"Release": {"${PODS_ROOT}/b.png"},
			"AdHoc":   {"${PODS_ROOT}/c.png"},
		},
	}

	first, err := gen.Generate()
	require.NoError(t, err)
	second, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCopyResourcesScriptEmptyConfiguration(t *testing.T) {
	gen := &generators.CopyResourcesScript{
		TargetName: "Pods-App",
		Platform:   types.PlatformIOS,
		ResourcesByConfig: map[string][]string{
			"Debug": {},
		},
	}

	content, err := gen.Generate()
	require.NoError(t, err)

	// The configuration branch still exists, with nothing to install.
	assert.Contains(t, string(content), "Debug)")
	assert.NotContains(t, string(content), "install_resource ")
}

func TestEmbedFrameworksScript(t *testing.T) {
	gen := &generators.EmbedFrameworksScript{
		TargetName: "Pods-App",
		FrameworksByConfig: map[string][]string{
			"Debug": {
				"${PODS_ROOT}/Prebuilt/Monkey.framework",
				"${BUILT_PRODUCTS_DIR}/BananaLib.framework",
			},
		},
	}

	assert.Equal(t, "Pods-App-frameworks.sh", gen.Name())

	content, err := gen.Generate()
	require.NoError(t, err)
	script := string(content)

	assert.Contains(t, script, `install_framework "${PODS_ROOT}/Prebuilt/Monkey.framework"`)
	assert.Contains(t, script, `install_framework "${BUILT_PRODUCTS_DIR}/BananaLib.framework"`)
	assert.Contains(t, script, "codesign")

	// Vendored frameworks come before the pod's own product.
	assert.Less(t,
		strings.Index(script, "Monkey.framework"),
		strings.Index(script, "BananaLib.framework"))
}
