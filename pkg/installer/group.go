package installer

// SupportFilesGroup accumulates the artifact paths written during one
// installation pass. It replaces hidden per-step instance state: the
// orchestrator threads it through every step and returns it to the
// caller for later discovery of the generated files.
type SupportFilesGroup struct {
	targetName string
	paths      []string
}

// NewSupportFilesGroup creates an empty group for the named target.
func NewSupportFilesGroup(targetName string) *SupportFilesGroup {
	return &SupportFilesGroup{targetName: targetName}
}

// TargetName returns the aggregate target the group belongs to.
func (g *SupportFilesGroup) TargetName() string {
	return g.targetName
}

// Register records an artifact path. Steps call this for every file
// they write.
func (g *SupportFilesGroup) Register(path string) {
	g.paths = append(g.paths, path)
}

// Paths returns the registered artifact paths in registration order.
func (g *SupportFilesGroup) Paths() []string {
	out := make([]string, len(g.paths))
	copy(out, g.paths)
	return out
}
