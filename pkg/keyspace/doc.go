// Package keyspace generates random passwords and describes password
// keyspaces over a character set.
//
// Length ranges are half-open: Enumerate, Size and CombinationCount cover
// every length k with minLen <= k < maxLen. maxLen itself is never produced,
// so Enumerate(2, 3, cs) yields only length-2 candidates and Enumerate(2, 2, cs)
// yields nothing.
//
// All package-level functions are safe for concurrent use. A Cursor is not.
package keyspace
