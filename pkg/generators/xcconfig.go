package generators

import (
	"fmt"
	"strings"

	"github.com/Aricalhe/podbundle/pkg/types"
)

// XCConfig serializes a settings map into an xcconfig file for one
// build configuration. Keys are emitted in lexical order so repeated
// runs produce identical files.
type XCConfig struct {
	TargetName string
	ConfigName string
	Settings   types.SettingsMap
}

func (g *XCConfig) Name() string {
	return fmt.Sprintf("%s.%s.xcconfig", g.TargetName, strings.ToLower(g.ConfigName))
}

func (g *XCConfig) Generate() ([]byte, error) {
	var b strings.Builder
	for _, key := range g.Settings.SortedKeys() {
		fmt.Fprintf(&b, "%s = %s\n", key, g.Settings[key])
	}
	return []byte(b.String()), nil
}
