package scanner

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// playbackStream wraps a raw byte source with the ability to record
// everything read from it and replay that recording later, so the
// scanner can restart decoding from byte 0 once a <meta charset> is
// discovered partway through the document. It is grounded on the
// original scanner's PlaybackInputStream.
type playbackStream struct {
	src io.Reader

	playback bool
	cleared  bool
	detected bool

	buf        []byte
	byteOffset int
	byteLength int

	pushbackOffset int
	pushbackLength int
}

func newPlaybackStream(src io.Reader) *playbackStream {
	return &playbackStream{src: src, buf: make([]byte, 1024)}
}

// detectEncoding probes up to three bytes for a byte-order mark. It
// returns the IANA and native encoding names it recognized, or two
// empty strings if none matched (in which case the probed bytes are
// queued for replay to the decoder via the pushback region).
func (p *playbackStream) detectEncoding() (iana, native string, err error) {
	if p.detected {
		return "", "", errors.New("htmlscan: detected encoding twice")
	}
	p.detected = true

	b1, ok1 := p.readByte()
	if !ok1 {
		return "", "", nil
	}
	b2, ok2 := p.readByte()
	if !ok2 {
		p.pushbackLength = 1
		return "", "", nil
	}

	if b1 == 0xEF && b2 == 0xBB {
		b3, ok3 := p.readByte()
		if ok3 && b3 == 0xBF {
			p.pushbackOffset = 3
			p.pushbackLength = 3
			return "UTF-8", "utf-8", nil
		}
		if ok3 {
			p.pushbackLength = 3
		} else {
			p.pushbackLength = 2
		}
		return "", "", nil
	}
	if b1 == 0xFF && b2 == 0xFE {
		return "UTF-16", "utf-16le", nil
	}
	if b1 == 0xFE && b2 == 0xFF {
		return "UTF-16", "utf-16be", nil
	}
	p.pushbackLength = 2
	return "", "", nil
}

// Playback switches the stream into replay mode: subsequent reads
// come from the recorded buffer until it is exhausted, at which point
// the stream auto-clears and resumes reading from src directly.
func (p *playbackStream) Playback() { p.playback = true }

// Clear stops buffering and releases the recording. It is a no-op
// while in playback; playback exhaustion clears automatically.
func (p *playbackStream) Clear() {
	if !p.playback {
		p.cleared = true
		p.buf = nil
	}
}

func (p *playbackStream) readByte() (byte, bool) {
	var b [1]byte
	n, _ := p.Read(b[:])
	if n == 0 {
		return 0, false
	}
	return b[0], true
}

// Read implements io.Reader, so a playbackStream can sit under
// golang.org/x/text/transform.NewReader like any other byte source.
func (p *playbackStream) Read(out []byte) (int, error) {
	if p.pushbackOffset < p.pushbackLength {
		n := copy(out, p.buf[p.pushbackOffset:p.pushbackLength])
		p.pushbackOffset += n
		return n, nil
	}
	if p.cleared {
		return p.src.Read(out)
	}
	if p.playback {
		if p.byteOffset == p.byteLength {
			return 0, io.EOF
		}
		n := copy(out, p.buf[p.byteOffset:p.byteLength])
		p.byteOffset += n
		if p.byteOffset == p.byteLength {
			p.cleared = true
			p.buf = nil
		}
		return n, nil
	}
	n, err := p.src.Read(out)
	if n > 0 {
		p.record(out[:n])
	}
	return n, err
}

// newDecodedRuneSource wraps a playback stream in a decoder and a
// buffered rune reader, for use after a <meta charset> switch forces
// the scanner to restart decoding with a different encoding.
func newDecodedRuneSource(p *playbackStream, dec enc.Encoding) runeSource {
	return bufio.NewReader(transform.NewReader(p, dec.NewDecoder()))
}

func (p *playbackStream) record(b []byte) {
	if p.byteLength+len(b) > len(p.buf) {
		grown := make([]byte, p.byteLength+len(b)+512)
		copy(grown, p.buf[:p.byteLength])
		p.buf = grown
	}
	copy(p.buf[p.byteLength:], b)
	p.byteLength += len(b)
}
