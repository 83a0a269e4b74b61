package generators

import (
	"fmt"
	"strings"

	"github.com/Aricalhe/podbundle/pkg/types"
)

// AcknowledgementsPlist produces the settings-bundle plist listing
// every bundled pod's license. Input is the flattened file-accessor
// list across all pod targets, in pod iteration order.
type AcknowledgementsPlist struct {
	TargetName string
	Accessors  []*types.FileAccessor
}

func (g *AcknowledgementsPlist) Name() string {
	return g.TargetName + "-acknowledgements.plist"
}

func (g *AcknowledgementsPlist) Generate() ([]byte, error) {
	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("<dict>\n")
	b.WriteString("  <key>PreferenceSpecifiers</key>\n")
	b.WriteString("  <array>\n")
	writePlistSpecifier(&b, "Acknowledgements", headerText)
	for _, fa := range g.Accessors {
		if fa.License == "" {
			continue
		}
		writePlistSpecifier(&b, fa.SpecName, fa.License)
	}
	writePlistSpecifier(&b, "", footerText)
	b.WriteString("  </array>\n")
	b.WriteString("  <key>StringsTable</key>\n")
	b.WriteString("  <string>Acknowledgements</string>\n")
	b.WriteString("  <key>Title</key>\n")
	b.WriteString("  <string>Acknowledgements</string>\n")
	b.WriteString("</dict>\n")
	b.WriteString("</plist>\n")
	return []byte(b.String()), nil
}

// AcknowledgementsMarkdown is the markdown variant of the
// acknowledgements artifact.
type AcknowledgementsMarkdown struct {
	TargetName string
	Accessors  []*types.FileAccessor
}

func (g *AcknowledgementsMarkdown) Name() string {
	return g.TargetName + "-acknowledgements.markdown"
}

func (g *AcknowledgementsMarkdown) Generate() ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Acknowledgements\n")
	fmt.Fprintf(&b, "%s\n", headerText)
	for _, fa := range g.Accessors {
		if fa.License == "" {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", fa.SpecName, fa.License)
	}
	fmt.Fprintf(&b, "\n%s\n", footerText)
	return []byte(b.String()), nil
}

func writePlistSpecifier(b *strings.Builder, title, text string) {
	b.WriteString("    <dict>\n")
	b.WriteString("      <key>FooterText</key>\n")
	fmt.Fprintf(b, "      <string>%s</string>\n", xmlEscape(text))
	b.WriteString("      <key>Title</key>\n")
	fmt.Fprintf(b, "      <string>%s</string>\n", xmlEscape(title))
	b.WriteString("      <key>Type</key>\n")
	b.WriteString("      <string>PSGroupSpecifier</string>\n")
	b.WriteString("    </dict>\n")
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}

const headerText = "This application makes use of the following third party libraries:"

const footerText = "Generated by podbundle"

const plistHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
`
