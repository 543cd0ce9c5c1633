package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader stands in for the go-audio decoder, serving int PCM data.
type fakeAiffReader struct {
	data []int
	pos  int
}

func (f *fakeAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 44100}
}

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeAiffReader{data: []int{16384, -16384, 32767, -32768}},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d samples, want 4", n)
	}

	want := []float32{0.5, -0.5, 32767.0 / 32768.0, -1}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("sample %d = %v, want %v", i, dst[i], w)
		}
	}

	n, err = s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_PartialReadSignalsEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeAiffReader{data: []int{100, 200}},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}
}

func TestDecode_NotAiff(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVE")))
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecode_PlainReaderIsBuffered(t *testing.T) {
	t.Parallel()

	// A non-seeking reader must still be rejected cleanly, via the
	// in-memory seeker.
	r := io.LimitReader(bytes.NewReader([]byte("FORM....JUNK")), 12)
	_, err := Decoder{}.Decode(r)
	if err == nil {
		t.Error("Decode() succeeded on a malformed FORM chunk")
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs := &readSeeker{data: []byte("abcdef")}

	buf := make([]byte, 3)
	n, err := rs.Read(buf)
	if n != 3 || err != nil || string(buf) != "abc" {
		t.Fatalf("Read() = (%d, %v, %q), want (3, nil, abc)", n, err, buf)
	}

	pos, err := rs.Seek(1, io.SeekStart)
	if pos != 1 || err != nil {
		t.Fatalf("Seek(1, start) = (%d, %v)", pos, err)
	}
	pos, err = rs.Seek(2, io.SeekCurrent)
	if pos != 3 || err != nil {
		t.Fatalf("Seek(2, current) = (%d, %v)", pos, err)
	}
	pos, err = rs.Seek(-1, io.SeekEnd)
	if pos != 5 || err != nil {
		t.Fatalf("Seek(-1, end) = (%d, %v)", pos, err)
	}
	if _, err := rs.Seek(-10, io.SeekStart); err == nil {
		t.Error("Seek to a negative position succeeded")
	}

	n, err = rs.Read(buf)
	if n != 1 || err != nil || buf[0] != 'f' {
		t.Errorf("Read() after seek = (%d, %v, %q)", n, err, buf[:n])
	}
}
