// Package rowload populates an already-built dimension from external row
// files: a JSON schema describing the file's columns and a
// newline-delimited JSON data file. The schema is validated against the
// dimension's declared fields before any row is ingested.
package rowload
