// Package bitops provides integer helpers for powers of two and for swapping
// the byte order of unsigned integers.
package bitops
