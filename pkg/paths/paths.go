// Package paths provides centralized path handling for podbundle.
// It resolves artifact locations inside the sandbox and rewrites file
// paths into the build-variable references that generated scripts use
// at build time.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/Aricalhe/podbundle/pkg/errors"
)

// Build-variable prefixes used in generated artifacts.
// These are expanded by the build system when the scripts run, NOT by
// podbundle, so they must be emitted verbatim.
const (
	// PodsRootVar references the sandbox root at build time
	PodsRootVar = "${PODS_ROOT}"

	// BuiltProductsVar references the build-products directory
	BuiltProductsVar = "${BUILT_PRODUCTS_DIR}"

	// ConfigurationBuildDirVar references the per-configuration build
	// directory
	ConfigurationBuildDirVar = "${CONFIGURATION_BUILD_DIR}"
)

// SupportFilesDirName is the sandbox subdirectory holding per-target
// support files.
const SupportFilesDirName = "Target Support Files"

// Sandbox locates the generated project root and the per-target
// support-files directories beneath it.
type Sandbox struct {
	// Root is the absolute path of the sandbox (the generated
	// project's root directory)
	Root string
}

// NewSandbox creates a sandbox rooted at the given directory.
func NewSandbox(root string) *Sandbox {
	return &Sandbox{Root: filepath.Clean(root)}
}

// SupportFilesDir returns the support-files directory for the named
// aggregate target.
func (s *Sandbox) SupportFilesDir(targetName string) string {
	return filepath.Join(s.Root, SupportFilesDirName, targetName)
}

// SupportFile returns the path of a support-file artifact for the
// named aggregate target.
func (s *Sandbox) SupportFile(targetName, fileName string) string {
	return filepath.Join(s.SupportFilesDir(targetName), fileName)
}

// PodsRootRef rewrites an absolute artifact path into a ${PODS_ROOT}
// reference. The path must live under the sandbox root; anything else
// is an InvalidArtifactPath error.
func (s *Sandbox) PodsRootRef(path string) (string, error) {
	rel, err := filepath.Rel(s.Root, filepath.Clean(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidArtifactPath,
			"cannot make %q relative to sandbox", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidArtifactPath,
			"path %q escapes the sandbox root", path)
	}
	return PodsRootVar + "/" + filepath.ToSlash(rel), nil
}

// BuiltProductRef returns the build-products reference for a target's
// own product (e.g. "${BUILT_PRODUCTS_DIR}/BananaLib.framework").
func BuiltProductRef(productName string) string {
	return BuiltProductsVar + "/" + productName
}

// BundleRef returns the per-configuration build-dir reference for a
// resource bundle. The bundle name is shell-escaped because the
// reference is later substituted into a shell script.
func BundleRef(bundleName string) string {
	return ConfigurationBuildDirVar + "/" + ShellEscape(bundleName) + ".bundle"
}

// ShellEscape escapes a string for safe interpolation into a shell
// word. Safe characters pass through; everything else is
// backslash-escaped.
func ShellEscape(s string) string {
	if s == "" {
		return "''"
	}
	var b strings.Builder
	for _, r := range s {
		if isShellSafe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '-', '.', ',', ':', '/', '@', '+', '=', '%':
		return true
	}
	return false
}
