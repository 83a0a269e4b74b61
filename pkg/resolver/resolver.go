// Package resolver implements the per-configuration inclusion
// predicates the aggregators consult for every (pod target,
// configuration) pair.
package resolver

import "github.com/Aricalhe/podbundle/pkg/types"

// IncludedInConfiguration reports whether the pod target participates
// in the named build configuration. A pod with an empty configuration
// whitelist participates in every configuration; otherwise membership
// is by exact name.
//
// The predicate is pure and uncached: callers re-evaluate it on every
// aggregation so mutations of the underlying target graph are always
// observed.
func IncludedInConfiguration(pt *types.PodTarget, configName string) bool {
	if len(pt.Configurations) == 0 {
		return true
	}
	for _, name := range pt.Configurations {
		if name == configName {
			return true
		}
	}
	return false
}

// LinksStatically reports whether the pod target is compiled directly
// into the aggregate as a framework rather than shipped as loose
// resources. Such pods are excluded from the resource-copy path; their
// resources travel inside the built framework.
//
// This filter and IncludedInConfiguration are independent and
// commutative: a pod with ShouldBuild=false and
// RequiresFrameworks=true is NOT considered statically linked and so
// still contributes loose resources.
func LinksStatically(pt *types.PodTarget) bool {
	return pt.ShouldBuild && pt.RequiresFrameworks
}
