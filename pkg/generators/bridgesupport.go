package generators

import (
	"github.com/beevik/etree"

	"github.com/Aricalhe/podbundle/pkg/errors"
)

// BridgeSupport serializes the bridge-support metadata artifact from
// an ordered list of public header paths. Runtime-interpreted
// environments read it to introspect the bundled native symbols.
type BridgeSupport struct {
	TargetName string
	Headers    []string
}

func (g *BridgeSupport) Name() string {
	return g.TargetName + ".bridgesupport"
}

func (g *BridgeSupport) Generate() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	doc.CreateDirective(`DOCTYPE signatures SYSTEM "file://localhost/System/Library/DTDs/BridgeSupport.dtd"`)

	signatures := doc.CreateElement("signatures")
	signatures.CreateAttr("version", "1.0")
	for _, header := range g.Headers {
		dep := signatures.CreateElement("depends_on")
		dep.CreateAttr("path", header)
	}

	doc.Indent(2)
	content, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGeneratorWrite, "serializing bridge support metadata")
	}
	return content, nil
}
