package textutil

import (
	"io"

	"golang.org/x/text/transform"
)

// EOLNormalizer is a transform.Transformer that rewrites every recognized
// line break (\r\n, \r, or \n) to a fixed end-of-line sequence. It is the
// streaming counterpart of NormalizeEOL for callers ingesting text blocks
// from readers.
type EOLNormalizer struct {
	transform.NopResetter
	eol string
}

// NewEOLNormalizer creates a normalizer targeting eol.
func NewEOLNormalizer(eol string) *EOLNormalizer {
	return &EOLNormalizer{eol: eol}
}

// Transform implements transform.Transformer.
func (t *EOLNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		switch c := src[nSrc]; c {
		case '\r':
			// A trailing CR may be half of a CRLF split across chunks.
			if nSrc == len(src)-1 && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst+len(t.eol) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], t.eol)
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
		case '\n':
			if nDst+len(t.eol) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], t.eol)
			nSrc++
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// NormalizeEOLReader wraps r so that every line break read through it is
// rewritten to eol.
func NormalizeEOLReader(r io.Reader, eol string) io.Reader {
	return transform.NewReader(r, NewEOLNormalizer(eol))
}
