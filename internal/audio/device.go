package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// voice is one playing stream. Effect voices are rewound with Seek and
// replayed; their sources are always seekable.
type voice interface {
	Play()
	Pause()
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

// output creates voices. The oto context is the only real implementation.
type output interface {
	NewVoice(r io.Reader) voice
}

type otoOutput struct {
	ctx *oto.Context
}

func (o otoOutput) NewVoice(r io.Reader) voice {
	return o.ctx.NewPlayer(r)
}

// oto allows a single context per process, so every Player shares it.
var (
	deviceOnce sync.Once
	device     output
	deviceErr  error
)

// openDevice opens the audio device at sampleRate, 16-bit stereo.
// Later calls return the first result whatever rate they ask for.
func openDevice(sampleRate int) (output, error) {
	deviceOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			deviceErr = fmt.Errorf("audio: open device: %w", err)
			return
		}
		<-ready
		device = otoOutput{ctx: ctx}
	})
	return device, deviceErr
}
