// Package settings computes the fixed build settings of aggregate
// targets.
package settings

import "github.com/Aricalhe/podbundle/pkg/types"

// aggregateOverrides are the settings every aggregate target pins,
// regardless of what the base settings say. Code signing is disabled
// for device SDKs, the product is forced to a static library, and
// linker/libtool flags are cleared so vendored static artifacts are
// linked once into the consuming application instead of twice.
var aggregateOverrides = types.SettingsMap{
	"CODE_SIGN_IDENTITY[sdk=appletvos*]": "",
	"CODE_SIGN_IDENTITY[sdk=iphoneos*]":  "",
	"CODE_SIGN_IDENTITY[sdk=watchos*]":   "",
	"MACH_O_TYPE":                        "staticlib",
	"OTHER_LDFLAGS":                      "",
	"OTHER_LIBTOOLFLAGS":                 "",
	"PODS_ROOT":                          "${SRCROOT}",
	"PRODUCT_BUNDLE_IDENTIFIER":          "org.podbundle.${PRODUCT_NAME:rfc1034identifier}",
	"SKIP_INSTALL":                       "YES",
}

// MergeAggregate merges the base settings with the aggregate-specific
// overrides. Overrides always win for identical keys; the base map is
// not modified.
func MergeAggregate(base types.SettingsMap) types.SettingsMap {
	return base.Merge(aggregateOverrides)
}

// AggregateOverrides returns a copy of the fixed override set.
func AggregateOverrides() types.SettingsMap {
	return types.SettingsMap{}.Merge(aggregateOverrides)
}
