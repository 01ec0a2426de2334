package pdf

import "golang.org/x/text/language"

// Catalog represents a PDF Document Catalog, the root of the object graph
// reachable from the trailer's /Root entry. Only the fields this writer
// itself populates or that a producer needs to reach through the core are
// kept; everything else (forms, structure trees, optional content, Web
// Capture) belongs to producers built on top of this package.
//
// The Document Catalog is documented in section 7.7.2 of ISO 32000-1:2008.
type Catalog struct {
	// Pages is the root of the document's page tree. Required.
	Pages Reference

	// Outlines is the root of the document's outline hierarchy, set by a
	// producer that builds bookmarks on top of this core.
	Outlines Reference

	// Metadata is a reference to an XMP metadata stream, set by a producer.
	Metadata Reference

	// Lang specifies the natural language for all text in the document.
	Lang language.Tag

	// extensionLevel, when non-zero, causes the catalog to advertise an
	// Adobe developer extension (used for 1.7ext3 / AESV3 documents so that
	// readers recognize the crypt filter on a %PDF-1.7 file).
	extensionLevel int
}

func (c *Catalog) asDict() Dict {
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	d.Set("Pages", c.Pages)
	if c.Outlines != 0 {
		d.Set("Outlines", c.Outlines)
	}
	if c.Metadata != 0 {
		d.Set("Metadata", c.Metadata)
	}
	if tag := c.Lang.String(); tag != "" && tag != "und" {
		d.Set("Lang", TextString(tag))
	}
	if c.extensionLevel > 0 {
		adbe := NewDict()
		adbe.Set("BaseVersion", Name("1.7"))
		adbe.Set("ExtensionLevel", Integer(c.extensionLevel))
		extDict := NewDict()
		extDict.Set("ADBE", adbe)
		d.Set("Extensions", extDict)
	}
	return d
}
