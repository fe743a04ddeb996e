package console

import (
	"io"

	"golang.org/x/text/transform"
)

// crlf folds "\r\n" into "\n". readline ends a line on either byte, so an
// unfolded pair reads as the typed line plus an empty one. A lone "\r" is
// kept and still ends a line.
type crlf struct{ transform.NopResetter }

func (crlf) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				nSrc++
				continue
			}
		}
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// normalizedInput reads in through the crlf transformer; Close closes in.
type normalizedInput struct {
	io.Reader
	io.Closer
}

func normalizeLineEndings(in io.ReadCloser) io.ReadCloser {
	return normalizedInput{Reader: transform.NewReader(in, crlf{}), Closer: in}
}
