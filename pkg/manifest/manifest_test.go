package manifest_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aricalhe/podbundle/pkg/errors"
	"github.com/Aricalhe/podbundle/pkg/filesystem"
	"github.com/Aricalhe/podbundle/pkg/manifest"
	"github.com/Aricalhe/podbundle/pkg/types"
)

const sampleManifest = `
targets:
  - name: Pods-App
    platform: ios
    requires_frameworks: true
    build_configurations:
      Debug: debug
      Release: release
    pods:
      - name: BananaLib
        should_build: true
        requires_frameworks: true
        configurations: [Debug]
        file_accessors:
          - spec_name: BananaLib
            resources:
              - BananaLib/Resources/banana.png
            resource_bundles:
              BananaBundle:
                - BananaLib/Assets/a.png
            public_headers:
              - BananaLib/Banana.h
            license: MIT
      - name: MonkeyLib
        file_accessors:
          - spec_name: MonkeyLib
            vendored_frameworks:
              - MonkeyLib/Monkey.framework
`

func writeManifest(t *testing.T, content string) (types.FS, string) {
	t.Helper()
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("/project/podbundle.yaml", []byte(content), 0644))
	return fs, "/project/podbundle.yaml"
}

func TestLoad(t *testing.T) {
	fs, path := writeManifest(t, sampleManifest)

	targets, err := manifest.Load(fs, path, "/project/Pods")
	require.NoError(t, err)
	require.Len(t, targets, 1)

	target := targets[0]
	assert.Equal(t, "Pods-App", target.Name)
	assert.Equal(t, types.PlatformIOS, target.Platform)
	assert.True(t, target.RequiresFrameworks)
	assert.False(t, target.RequiresHostTarget)
	assert.Len(t, target.BuildConfigurations, 2)

	require.Len(t, target.PodTargets, 2)
	banana := target.PodTargets[0]
	assert.True(t, banana.ShouldBuild)
	assert.Equal(t, []string{"Debug"}, banana.Configurations)

	require.Len(t, banana.FileAccessors, 1)
	fa := banana.FileAccessors[0]
	assert.Equal(t, []string{"/project/Pods/BananaLib/Resources/banana.png"}, fa.Resources)
	assert.Equal(t, []string{"/project/Pods/BananaLib/Banana.h"}, fa.PublicHeaders)
	assert.Equal(t, "MIT", fa.License)

	monkey := target.PodTargets[1]
	assert.Equal(t, []string{"/project/Pods/MonkeyLib/Monkey.framework"},
		monkey.FileAccessors[0].VendoredFrameworks)
}

func TestLoadMissingFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := manifest.Load(fs, "/project/missing.yaml", "/project/Pods")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestLoadInvalidYaml(t *testing.T) {
	fs, path := writeManifest(t, "targets: [\n")

	_, err := manifest.Load(fs, path, "/project/Pods")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
}

func TestLoadEmptyManifest(t *testing.T) {
	fs, path := writeManifest(t, "targets: []\n")

	_, err := manifest.Load(fs, path, "/project/Pods")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
}

func TestLoadInvalidTarget(t *testing.T) {
	fs, path := writeManifest(t, `
targets:
  - name: Pods-App
    platform: amiga
    build_configurations:
      Debug: debug
`)

	_, err := manifest.Load(fs, path, "/project/Pods")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetInvalid))
}
