package docstamp

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Stamper replaces ${name} placeholders in a DOCX document with values from
// a StampData map. Placeholders are plain literals, not expressions, and a
// placeholder may be spread over any number of runs within one paragraph;
// run formatting survives the substitution.
type Stamper struct {
	config *Config
}

// New creates a Stamper with the global configuration.
func New() *Stamper {
	return &Stamper{config: GetGlobalConfig()}
}

// NewWithConfig creates a Stamper with a custom configuration.
func NewWithConfig(config *Config) *Stamper {
	return &Stamper{config: NewConfigWithDefaults(config)}
}

// Stamp reads a DOCX document from r, replaces its placeholders with
// values from data and returns the stamped document. All parts other than
// word/document.xml are copied through unchanged.
func (s *Stamper) Stamp(r io.Reader, data StampData) (io.Reader, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, NewDocumentError("read", "", err)
	}

	docxReader, err := NewDocxReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}

	docXML, err := docxReader.GetDocumentXML()
	if err != nil {
		return nil, NewDocumentError("extract", "word/document.xml", err)
	}

	doc, err := ParseDocument(bytes.NewReader([]byte(docXML)))
	if err != nil {
		return nil, NewDocumentError("parse", "word/document.xml", err)
	}

	replaced, err := s.stampDocument(doc, data)
	if err != nil {
		return nil, err
	}
	Debug("stamped document: %d replacements", replaced)

	stampedXML, err := marshalDocumentWithNamespaces(doc)
	if err != nil {
		return nil, NewDocumentError("marshal", "word/document.xml", err)
	}

	// Write a new DOCX with the stamped document.xml, copying every other
	// part verbatim.
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	zipReader, err := zip.NewReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source zip: %w", err)
	}

	for _, file := range zipReader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}

		if file.Name == "word/document.xml" {
			if _, err := fw.Write(stampedXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}

		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

// StampFile stamps the document at inPath and writes the result to outPath.
func (s *Stamper) StampFile(inPath, outPath string, data StampData) error {
	in, err := os.Open(inPath)
	if err != nil {
		return NewDocumentError("open", inPath, err)
	}
	defer in.Close()

	output, err := s.Stamp(in, data)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return NewDocumentError("create", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, output); err != nil {
		return NewDocumentError("write", outPath, err)
	}

	return nil
}

// stampDocument walks every paragraph of the body, including paragraphs
// inside table cells, and stamps each one. Returns the number of
// replacements applied.
func (s *Stamper) stampDocument(doc *Document, data StampData) (int, error) {
	if doc.Body == nil {
		return 0, nil
	}

	total := 0
	for _, elem := range doc.Body.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			n, err := s.stampParagraph(el, data)
			if err != nil {
				return total, err
			}
			total += n
		case *Table:
			for i := range el.Rows {
				for j := range el.Rows[i].Cells {
					cell := &el.Rows[i].Cells[j]
					for k := range cell.Paragraphs {
						n, err := s.stampParagraph(&cell.Paragraphs[k], data)
						if err != nil {
							return total, err
						}
						total += n
					}
				}
			}
		}
	}
	return total, nil
}

// stampParagraph replaces the placeholders of one paragraph. Occurrences
// are collected up front from the paragraph's aggregated text; each one is
// then replaced exactly once, so a value that itself contains placeholder
// syntax cannot cause endless re-replacement. The run offsets recorded by
// an aggregator go stale after a replacement, so a fresh aggregator is
// built for every occurrence.
func (s *Stamper) stampParagraph(para *Paragraph, data StampData) (int, error) {
	text := NewParagraphAggregator(para).Text()
	placeholders := FindPlaceholders(text, s.config.PlaceholderPrefix, s.config.PlaceholderSuffix)
	if len(placeholders) == 0 {
		return 0, nil
	}

	replaced := 0
	for _, ph := range placeholders {
		value, ok := lookupValue(data, ph.Name)
		if !ok {
			if s.config.FailOnMissing {
				return replaced, NewPlaceholderError(ph.Name, "no value provided")
			}
			Warn("no value for placeholder %q, leaving it in place", ph.Name)
			continue
		}

		agg := NewParagraphAggregator(para)
		if agg.ReplaceFirst(ph.Raw, FormatValue(value)) {
			replaced++
		}
	}

	if replaced > 0 {
		cleanEmptyRuns(para)
	}
	return replaced, nil
}
