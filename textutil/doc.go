// Package textutil provides text normalization and measurement helpers for
// the emission engine: line-ending detection and normalization, and
// display-width measurement for visual column alignment.
package textutil
