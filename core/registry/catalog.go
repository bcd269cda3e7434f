package registry

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/dhvani-labs/granthika/core/errors"
	"github.com/dhvani-labs/granthika/core/texttype"
)

// ImportCatalogXML parses an XML scripture catalog into a pattern Table.
// Operators maintain some corpus metadata as TEI-style XML; this converts
// it to the declarative table the registry builds from. Expected shape:
//
//	<catalog>
//	  <scripture id="Bhagavad_Gita" prefix="bhg" strategy="DIALOGUE">
//	    <pattern name="comment-marker">//\s*bhg_[0-9][0-9,.\-]*\s*//</pattern>
//	  </scripture>
//	</catalog>
func ImportCatalogXML(r io.Reader) (*Table, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Message: "scripture catalog", Err: err}
	}

	nodes := xmlquery.Find(doc, "//catalog/scripture")
	if len(nodes) == 0 {
		return nil, errors.NewParse("XML", "", "catalog contains no scripture elements")
	}

	table := &Table{}
	for _, node := range nodes {
		entry := ScriptureEntry{
			ID:       node.SelectAttr("id"),
			Prefix:   node.SelectAttr("prefix"),
			Strategy: texttype.TextType(node.SelectAttr("strategy")),
		}
		if entry.ID == "" {
			return nil, errors.NewParse("XML", "", "scripture element without id attribute")
		}

		for _, p := range xmlquery.Find(node, "pattern") {
			entry.RemovalPatterns = append(entry.RemovalPatterns, PatternEntry{
				Name:  p.SelectAttr("name"),
				Regex: strings.TrimSpace(p.InnerText()),
			})
		}
		table.Scriptures = append(table.Scriptures, entry)
	}

	return table, nil
}
