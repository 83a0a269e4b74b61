package generators

import (
	"fmt"
	"strings"
)

// InfoPlist produces the Info.plist for an aggregate target that
// builds as a framework.
type InfoPlist struct {
	TargetName string
}

func (g *InfoPlist) Name() string {
	return "Info.plist"
}

func (g *InfoPlist) Generate() ([]byte, error) {
	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("<dict>\n")
	writePlistString(&b, "CFBundleDevelopmentRegion", "en")
	writePlistString(&b, "CFBundleExecutable", "${EXECUTABLE_NAME}")
	writePlistString(&b, "CFBundleIdentifier", "${PRODUCT_BUNDLE_IDENTIFIER}")
	writePlistString(&b, "CFBundleInfoDictionaryVersion", "6.0")
	writePlistString(&b, "CFBundleName", "${PRODUCT_NAME}")
	writePlistString(&b, "CFBundlePackageType", "FMWK")
	writePlistString(&b, "CFBundleShortVersionString", "1.0.0")
	writePlistString(&b, "CFBundleSignature", "????")
	writePlistString(&b, "CFBundleVersion", "${CURRENT_PROJECT_VERSION}")
	b.WriteString("</dict>\n")
	b.WriteString("</plist>\n")
	return []byte(b.String()), nil
}

// ModuleMap produces the framework module map for an aggregate
// target.
type ModuleMap struct {
	TargetName string
}

func (g *ModuleMap) Name() string {
	return g.TargetName + ".modulemap"
}

func (g *ModuleMap) Generate() ([]byte, error) {
	module := ModuleName(g.TargetName)
	content := fmt.Sprintf(`framework module %s {
  umbrella header "%s-umbrella.h"

  export *
  module * { export * }
}
`, module, g.TargetName)
	return []byte(content), nil
}

// UmbrellaHeader produces the umbrella header referenced by the
// module map.
type UmbrellaHeader struct {
	TargetName string
}

func (g *UmbrellaHeader) Name() string {
	return g.TargetName + "-umbrella.h"
}

func (g *UmbrellaHeader) Generate() ([]byte, error) {
	module := ModuleName(g.TargetName)
	content := fmt.Sprintf(`#ifdef __OBJC__
#import <Foundation/Foundation.h>
#endif

FOUNDATION_EXPORT double %sVersionNumber;
FOUNDATION_EXPORT const unsigned char %sVersionString[];
`, module, module)
	return []byte(content), nil
}

// DummySource produces the placeholder source file that gives the
// aggregate target something to compile.
type DummySource struct {
	TargetName string
}

func (g *DummySource) Name() string {
	return g.TargetName + "-dummy.m"
}

func (g *DummySource) Generate() ([]byte, error) {
	module := ModuleName(g.TargetName)
	content := fmt.Sprintf(`#import <Foundation/Foundation.h>
@interface PodsDummy_%s : NSObject
@end
@implementation PodsDummy_%s
@end
`, module, module)
	return []byte(content), nil
}

// ModuleName converts a target name into a valid C identifier by
// replacing every non-alphanumeric character with an underscore.
func ModuleName(targetName string) string {
	var b strings.Builder
	for _, r := range targetName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func writePlistString(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "  <key>%s</key>\n", key)
	fmt.Fprintf(b, "  <string>%s</string>\n", xmlEscape(value))
}
