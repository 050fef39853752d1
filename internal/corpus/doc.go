// Package corpus enumerates audio files in a directory tree and copies
// selected subsets. Enumeration is deterministic (lexicographically sorted)
// so repeated runs over an unchanged corpus produce byte-identical tables.
package corpus
