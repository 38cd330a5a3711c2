// Package greenstar records Green Star sustainability certified projects.
//
// A Project holds the name, location, registered and certified dates, rating
// tool and rating of one certification. A Rating is a non-negative integer or
// NA when not available.
//
// A Store keeps projects in their recording order. It is saved to, and
// restored from, gob snapshot files. Projects can also be exchanged as JSON
// lines (EncodeJSONL, DecodeJSONL) and queried with JSONPath (Query).
//
// This package is the foundation of the `gstar` command line tool, the
// charts are drawn by the chart subpackage.
package greenstar
