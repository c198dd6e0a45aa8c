package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// decodeFile decodes a WAV, Ogg Vorbis or MP3 file into 16-bit stereo PCM
// at sampleRate. The format is picked by extension.
func decodeFile(path string, sampleRate int) (io.ReadSeeker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src := bytes.NewReader(data)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, src)
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

// loadEffect decodes a whole sound effect into memory.
func loadEffect(path string, sampleRate int) ([]byte, error) {
	stream, err := decodeFile(path, sampleRate)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("decode %s: no samples", path)
	}
	return pcm, nil
}

// loopReader restarts its source at EOF.
type loopReader struct {
	src io.ReadSeeker
}

func (l *loopReader) Read(p []byte) (int, error) {
	n, err := l.src.Read(p)
	if n > 0 || !errors.Is(err, io.EOF) {
		return n, err
	}
	if _, err := l.src.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	// An empty source would spin forever
	return l.src.Read(p)
}
