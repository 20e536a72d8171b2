package textutil

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestEOLNormalizerToLF(t *testing.T) {
	got, _, err := transform.String(NewEOLNormalizer("\n"), "a\r\nb\rc\nd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "a\nb\nc\nd" {
		t.Errorf("expected %q, got %q", "a\nb\nc\nd", got)
	}
}

func TestEOLNormalizerToCRLF(t *testing.T) {
	got, _, err := transform.String(NewEOLNormalizer("\r\n"), "a\nb\rc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "a\r\nb\r\nc" {
		t.Errorf("expected %q, got %q", "a\r\nb\r\nc", got)
	}
}

func TestEOLNormalizerHoldsTrailingCR(t *testing.T) {
	// A CR at the end of a chunk may be half of a CRLF; the transformer
	// must wait for more input.
	n := NewEOLNormalizer("\n")
	dst := make([]byte, 16)

	nDst, nSrc, err := n.Transform(dst, []byte("ab\r"), false)
	if err != transform.ErrShortSrc {
		t.Fatalf("expected ErrShortSrc, got %v", err)
	}

	if nSrc != 2 || string(dst[:nDst]) != "ab" {
		t.Errorf("expected to consume %q, consumed %q", "ab", string(dst[:nDst]))
	}
}

func TestEOLNormalizerTrailingCRAtEOF(t *testing.T) {
	n := NewEOLNormalizer("\n")
	dst := make([]byte, 16)

	nDst, _, err := n.Transform(dst, []byte("ab\r"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(dst[:nDst]) != "ab\n" {
		t.Errorf("expected %q, got %q", "ab\n", string(dst[:nDst]))
	}
}

func TestNormalizeEOLReader(t *testing.T) {
	r := NormalizeEOLReader(strings.NewReader("one\r\ntwo\rthree\n"), "\n")

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != "one\ntwo\nthree\n" {
		t.Errorf("expected %q, got %q", "one\ntwo\nthree\n", string(data))
	}
}
