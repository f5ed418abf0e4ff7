// Package types provides the value types shared by the OOXML element builders.
//
// Every enumeration in this package maps each variant to exactly one schema token through its
// String method, so element builders can write the token straight into an attribute value.
package types
