// SPDX-License-Identifier: MIT

// Package archive persists eof.Series runs in a SQLite database
// (modernc.org/sqlite, no cgo).
//
// Each Save creates a run with a fresh UUID and a free-form label (e.g.
// "raw", "rotated"); Load rebuilds the series, and Latest finds the newest run
// for a label. Vectors and grid axes are stored bit-exactly as little-endian
// float64 blobs, so a saved series loads back identical.
package archive
