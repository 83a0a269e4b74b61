package types

// FileAccessor exposes the files a pod target declares, as resolved by
// the upstream target graph. Accessors are read-only to the
// aggregators; each accessor belongs to exactly one pod target.
type FileAccessor struct {
	// SpecName is the name of the pod spec this accessor was built
	// from, used in acknowledgements and error reporting
	SpecName string

	// Resources are loose resource file paths, in declaration order
	Resources []string

	// ResourceBundles maps bundle name to the files packaged inside it
	ResourceBundles map[string][]string

	// VendoredFrameworks are prebuilt dynamic binaries shipped with
	// the pod rather than compiled from source
	VendoredFrameworks []string

	// PublicHeaders are the pod's public header files, the input to
	// bridge-support generation
	PublicHeaders []string

	// License holds the pod's license text, when the podspec declares one
	License string
}

// BundleNames returns the resource bundle names in lexical order.
func (fa *FileAccessor) BundleNames() []string {
	names := make([]string, 0, len(fa.ResourceBundles))
	for name := range fa.ResourceBundles {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}
