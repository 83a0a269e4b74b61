package generators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aricalhe/podbundle/pkg/types"
)

// CopyResourcesScript emits the build-phase script that copies every
// aggregated resource into the product, dispatching on the active
// build configuration.
type CopyResourcesScript struct {
	TargetName string
	Platform   types.Platform

	// ResourcesByConfig maps configuration name to the ordered
	// resource references to install
	ResourcesByConfig map[string][]string
}

func (g *CopyResourcesScript) Name() string {
	return g.TargetName + "-resources.sh"
}

func (g *CopyResourcesScript) Generate() ([]byte, error) {
	var b strings.Builder
	b.WriteString(scriptPrologue)
	b.WriteString(copyResourcesFunctions)

	b.WriteString("case \"${CONFIGURATION}\" in\n")
	for _, configName := range sortedKeys(g.ResourcesByConfig) {
		fmt.Fprintf(&b, "  %s)\n", configName)
		for _, ref := range g.ResourcesByConfig[configName] {
			fmt.Fprintf(&b, "    install_resource \"%s\"\n", ref)
		}
		b.WriteString("    ;;\n")
	}
	b.WriteString("esac\n")

	b.WriteString(copyResourcesEpilogue)
	return []byte(b.String()), nil
}

// EmbedFrameworksScript emits the build-phase script that copies and
// re-signs dynamic frameworks into the product's Frameworks folder.
// It is never produced for host-dependent targets.
type EmbedFrameworksScript struct {
	TargetName string

	// FrameworksByConfig maps configuration name to the ordered
	// framework references to embed
	FrameworksByConfig map[string][]string
}

func (g *EmbedFrameworksScript) Name() string {
	return g.TargetName + "-frameworks.sh"
}

func (g *EmbedFrameworksScript) Generate() ([]byte, error) {
	var b strings.Builder
	b.WriteString(scriptPrologue)
	b.WriteString(embedFrameworksFunctions)

	b.WriteString("case \"${CONFIGURATION}\" in\n")
	for _, configName := range sortedKeys(g.FrameworksByConfig) {
		fmt.Fprintf(&b, "  %s)\n", configName)
		for _, ref := range g.FrameworksByConfig[configName] {
			fmt.Fprintf(&b, "    install_framework \"%s\"\n", ref)
		}
		b.WriteString("    ;;\n")
	}
	b.WriteString("esac\n")

	return []byte(b.String()), nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const scriptPrologue = `#!/bin/sh
set -e
set -u
set -o pipefail

`

const copyResourcesFunctions = `mkdir -p "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}"

RESOURCES_TO_COPY="${PODS_ROOT}/resources-to-copy-${TARGETNAME}.txt"
> "$RESOURCES_TO_COPY"

install_resource()
{
  case $1 in
    *.storyboard)
      ibtool --reference-external-strings-file --errors --warnings --notices --output-format human-readable-text --compile "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/$(basename "$1" .storyboard).storyboardc" "$1" --sdk "${SDKROOT}"
      ;;
    *.xib)
      ibtool --reference-external-strings-file --errors --warnings --notices --output-format human-readable-text --compile "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/$(basename "$1" .xib).nib" "$1" --sdk "${SDKROOT}"
      ;;
    *.xcdatamodeld)
      xcrun momc "$1" "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/$(basename "$1" .xcdatamodeld).momd"
      ;;
    /*)
      echo "$1" >> "$RESOURCES_TO_COPY"
      ;;
    *)
      echo "${PODS_ROOT}/$1" >> "$RESOURCES_TO_COPY"
      ;;
  esac
}

`

const copyResourcesEpilogue = `
rsync -avr --copy-links --no-relative --exclude '*/.svn/*' --files-from="$RESOURCES_TO_COPY" / "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}"
rm -f "$RESOURCES_TO_COPY"
`

const embedFrameworksFunctions = `install_framework()
{
  local source="$1"
  local destination="${TARGET_BUILD_DIR}/${FRAMEWORKS_FOLDER_PATH}"

  mkdir -p "$destination"
  rsync -av --exclude '.DS_Store' --exclude 'CVS' --exclude '.svn' "$source" "$destination"

  # Resign on copy when a signing identity is configured
  if [ -n "${EXPANDED_CODE_SIGN_IDENTITY:-}" ]; then
    /usr/bin/codesign --force --sign "${EXPANDED_CODE_SIGN_IDENTITY}" --preserve-metadata=identifier,entitlements "$destination/$(basename "$source")"
  fi
}

`
