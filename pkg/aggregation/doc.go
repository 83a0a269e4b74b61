// Package aggregation derives, per build configuration, the artifact
// sets an aggregate target must copy or embed into the final product.
//
// Both aggregators are pure functions of the target's pod-target set:
// recomputing them on unchanged input yields identical output, in the
// same order. Every configuration the target declares gets a map
// entry, even when no pod contributes anything to it.
package aggregation
