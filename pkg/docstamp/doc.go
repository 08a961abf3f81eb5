// Package docstamp stamps values into Microsoft Word documents (DOCX).
//
// A template document contains ${name} placeholders in ordinary text. Word
// processors split paragraph text into runs at arbitrary positions, so a
// placeholder is frequently spread over several runs, each with its own
// formatting. Docstamp aggregates the runs of a paragraph into one logical
// text, locates each placeholder there, and rewrites exactly the runs the
// match touches, leaving the surrounding formatting alone.
//
// # Quick Start
//
//	stamper := docstamp.New()
//
//	data := docstamp.StampData{
//	    "name":    "John Doe",
//	    "company": "Acme Corporation",
//	}
//
//	err := stamper.StampFile("template.docx", "output.docx", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Values may be nested maps, addressed with dot paths:
//
//	${customer.name}
//
// # Run aggregation
//
// The lower-level building blocks are exported for callers that traverse
// documents themselves. RunAggregator maps a paragraph's runs onto one
// string and performs cross-run substring replacement:
//
//	agg := docstamp.NewParagraphAggregator(para)
//	agg.ReplaceFirst("${name}", "John Doe")
//
// # Configuration
//
// Behavior is controlled through Config, either per Stamper via
// NewWithConfig or globally via SetGlobalConfig. Environment variables
// DOCSTAMP_LOG_LEVEL, DOCSTAMP_PLACEHOLDER_PREFIX,
// DOCSTAMP_PLACEHOLDER_SUFFIX and DOCSTAMP_FAIL_ON_MISSING seed the global
// configuration.
package docstamp
