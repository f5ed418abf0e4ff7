// Package parts provides the models of the OOXML package parts that sit next to the document body:
// content types, package and document relationships, document properties, styles, numbering,
// settings, font table and comments.
//
// Every part starts from its schema-mandated default state (New...), exposes a small set of typed
// mutators and serializes itself through Build. Parts never look at each other; cross-part
// consistency is the assembler's job.
package parts
