package docstamp

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// namespaceURIToPrefix converts a full namespace URI to its conventional
// prefix. Attributes on the document root arrive from the decoder with the
// URI in place of the prefix, so writing them back needs the reverse map.
func namespaceURIToPrefix(uri string) string {
	prefixMap := map[string]string{
		"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
		"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
		"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
		"http://www.w3.org/XML/1998/namespace":                                   "xml",
		"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
		"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
		"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
		"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
		"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
		"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
		"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
		"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
		"urn:schemas-microsoft-com:vml":                                          "v",
		"urn:schemas-microsoft-com:office:office":                                "o",
		"urn:schemas-microsoft-com:office:word":                                  "w10",
	}

	if prefix, ok := prefixMap[uri]; ok {
		return prefix
	}
	// Return the URI as-is if no mapping found (shouldn't happen but safe fallback)
	return uri
}

// marshalDocumentWithNamespaces serializes a document back to OOXML with
// w:-prefixed element names and the root namespace declarations the
// document was parsed with.
func marshalDocumentWithNamespaces(doc *Document) ([]byte, error) {
	var bodyBuf bytes.Buffer
	enc := xml.NewEncoder(&bodyBuf)
	if doc.Body != nil {
		if err := enc.EncodeElement(doc.Body, xml.StartElement{Name: xml.Name{Local: "body"}}); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	xmlStr := bodyBuf.String()

	// Add the w: prefix to all elements this model emits
	xmlStr = strings.ReplaceAll(xmlStr, "<body>", `<w:body>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</body>", `</w:body>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<p>", `<w:p>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</p>", `</w:p>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<r>", `<w:r>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</r>", `</w:r>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<t ", `<w:t `)
	xmlStr = strings.ReplaceAll(xmlStr, "<t>", `<w:t>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</t>", `</w:t>`)
	xmlStr = strings.ReplaceAll(xmlStr, "></br>", `/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<br/>", `<w:br/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<br ", `<w:br `)

	// Table elements
	xmlStr = strings.ReplaceAll(xmlStr, "<tbl>", `<w:tbl>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tbl>", `</w:tbl>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tr>", `<w:tr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tr>", `</w:tr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tc>", `<w:tc>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tc>", `</w:tc>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tblPr>", `<w:tblPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tblPr>", `</w:tblPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tblGrid>", `<w:tblGrid>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tblGrid>", `</w:tblGrid>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<gridCol ", `<w:gridCol `)
	xmlStr = strings.ReplaceAll(xmlStr, "</gridCol>", `</w:gridCol>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<trPr>", `<w:trPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</trPr>", `</w:trPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<trHeight ", `<w:trHeight `)
	xmlStr = strings.ReplaceAll(xmlStr, "</trHeight>", `</w:trHeight>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tcPr>", `<w:tcPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</tcPr>", `</w:tcPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tcW ", `<w:tcW `)
	xmlStr = strings.ReplaceAll(xmlStr, "</tcW>", `</w:tcW>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<gridSpan ", `<w:gridSpan `)
	xmlStr = strings.ReplaceAll(xmlStr, "</gridSpan>", `</w:gridSpan>`)

	// Paragraph and run properties
	xmlStr = strings.ReplaceAll(xmlStr, "<pPr>", `<w:pPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</pPr>", `</w:pPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<rPr>", `<w:rPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "</rPr>", `</w:rPr>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<pStyle ", `<w:pStyle `)
	xmlStr = strings.ReplaceAll(xmlStr, "</pStyle>", `</w:pStyle>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<jc ", `<w:jc `)
	xmlStr = strings.ReplaceAll(xmlStr, "</jc>", `</w:jc>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<ind ", `<w:ind `)
	xmlStr = strings.ReplaceAll(xmlStr, "</ind>", `</w:ind>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<spacing ", `<w:spacing `)
	xmlStr = strings.ReplaceAll(xmlStr, "</spacing>", `</w:spacing>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<b></b>", `<w:b/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<b/>", `<w:b/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<i></i>", `<w:i/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<i/>", `<w:i/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<u ", `<w:u `)
	xmlStr = strings.ReplaceAll(xmlStr, "</u>", `</w:u>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<strike></strike>", `<w:strike/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<strike/>", `<w:strike/>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<vertAlign ", `<w:vertAlign `)
	xmlStr = strings.ReplaceAll(xmlStr, "</vertAlign>", `</w:vertAlign>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<color ", `<w:color `)
	xmlStr = strings.ReplaceAll(xmlStr, "</color>", `</w:color>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<sz ", `<w:sz `)
	xmlStr = strings.ReplaceAll(xmlStr, "</sz>", `</w:sz>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<rFonts ", `<w:rFonts `)
	xmlStr = strings.ReplaceAll(xmlStr, "</rFonts>", `</w:rFonts>`)
	xmlStr = strings.ReplaceAll(xmlStr, "<tblStyle ", `<w:tblStyle `)
	xmlStr = strings.ReplaceAll(xmlStr, "</tblStyle>", `</w:tblStyle>`)

	// Attributes
	xmlStr = strings.ReplaceAll(xmlStr, ` space="preserve"`, ` xml:space="preserve"`)
	xmlStr = strings.ReplaceAll(xmlStr, ` space=""`, ``)
	xmlStr = strings.ReplaceAll(xmlStr, ` val="`, ` w:val="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` type="`, ` w:type="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` w="`, ` w:w="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` ascii="`, ` w:ascii="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` left="`, ` w:left="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` right="`, ` w:right="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` before="`, ` w:before="`)
	xmlStr = strings.ReplaceAll(xmlStr, ` after="`, ` w:after="`)

	// Remove empty property elements that might cause issues
	xmlStr = strings.ReplaceAll(xmlStr, `<w:pPr></w:pPr>`, ``)
	xmlStr = strings.ReplaceAll(xmlStr, `<w:rPr></w:rPr>`, ``)
	xmlStr = strings.ReplaceAll(xmlStr, `<w:pStyle w:val=""></w:pStyle>`, ``)

	// Add the document declaration and root element with namespaces
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString("\n")
	buf.WriteString("<w:document")

	if len(doc.Attrs) > 0 {
		for _, attr := range doc.Attrs {
			// Skip the default xmlns declaration since we're using w:document
			if attr.Name.Local == "xmlns" && attr.Name.Space == "" {
				continue
			}
			buf.WriteString(" ")
			if attr.Name.Space != "" {
				prefix := attr.Name.Space
				if prefix != "xmlns" {
					prefix = namespaceURIToPrefix(prefix)
				}
				buf.WriteString(prefix)
				buf.WriteString(":")
			}
			buf.WriteString(attr.Name.Local)
			buf.WriteString(`="`)
			buf.WriteString(attr.Value)
			buf.WriteString(`"`)
		}
	} else {
		// Fallback to minimal namespaces if no attributes were preserved
		buf.WriteString(` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`)
		buf.WriteString(` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`)
	}

	buf.WriteString(">")
	buf.WriteString(xmlStr)
	buf.WriteString(`</w:document>`)

	return buf.Bytes(), nil
}
