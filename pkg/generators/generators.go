// Package generators contains the artifact serializers the installer
// drives. Every generator is a pure function of the aggregated data it
// is constructed with: same input, same bytes, stable ordering. The
// installer depends only on the Generator interface, never on a
// concrete variant.
package generators

// Generator produces one support-file artifact from aggregated input.
type Generator interface {
	// Name returns the artifact's file name within the target's
	// support-files directory
	Name() string

	// Generate serializes the artifact content
	Generate() ([]byte, error)
}
