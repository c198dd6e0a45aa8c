// Package audio plays the game's sound effects and background music.
// Effects come from WAV files with synthesized tones as a fallback; music
// loops an Ogg or MP3 track. Every failure is logged and absorbed.
package audio

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
)

// Options selects the initial state of both channels.
type Options struct {
	Sound bool
	Music bool
}

// Player implements core.Audio on top of the oto device.
type Player struct {
	cfg config.AudioConfig
	out output
	log *log.Logger

	mu      sync.Mutex
	effects map[core.Sound][]byte
	voices  map[core.Sound]voice // One rewindable voice per effect, made on first play
	soundOn bool
	musicOn bool
	music   voice // nil until a track loads
}

var _ core.Audio = (*Player)(nil)

// New opens the audio device and loads every asset. Without a device the
// player stays silent and both channels report off.
func New(cfg config.AudioConfig, opts Options, logger *log.Logger) *Player {
	if logger == nil {
		logger = discard()
	}

	out, err := openDevice(cfg.SampleRate)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return &Player{cfg: cfg, log: logger, effects: map[core.Sound][]byte{}, voices: map[core.Sound]voice{}}
	}
	return newPlayer(cfg, opts, out, logger)
}

func newPlayer(cfg config.AudioConfig, opts Options, out output, logger *log.Logger) *Player {
	if logger == nil {
		logger = discard()
	}
	p := &Player{
		cfg:     cfg,
		out:     out,
		log:     logger,
		effects: make(map[core.Sound][]byte),
		voices:  make(map[core.Sound]voice),
		soundOn: opts.Sound,
		musicOn: opts.Music,
	}
	p.loadEffects()
	p.loadMusic()
	return p
}

func discard() *log.Logger {
	return log.New(io.Discard)
}

func (p *Player) loadEffects() {
	duration := time.Duration(p.cfg.ToneMillis) * time.Millisecond

	for _, s := range core.Sounds() {
		path := filepath.Join(p.cfg.SoundDir, s.String()+".wav")
		pcm, err := loadEffect(path, p.cfg.SampleRate)
		if err != nil {
			p.log.Debug("sound asset unavailable, synthesizing tone", "sound", s, "err", err)
			pcm = Tone(p.cfg.ToneFor(s.String()), duration, p.cfg.SampleRate, p.cfg.Volume)
		} else {
			scalePCM(pcm, p.cfg.Volume)
		}
		p.effects[s] = pcm
	}
}

// loadMusic tries each configured track in order and starts the first that
// decodes. Caller must not hold mu.
func (p *Player) loadMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, name := range p.cfg.Music {
		path := filepath.Join(p.cfg.SoundDir, name)
		stream, err := decodeFile(path, p.cfg.SampleRate)
		if err != nil {
			p.log.Debug("music track unavailable", "path", path, "err", err)
			continue
		}
		p.music = p.out.NewVoice(&loopReader{src: stream})
		if p.musicOn {
			p.music.Play()
		}
		p.log.Info("music loaded", "path", path)
		return
	}
	p.log.Warn("no background music could be loaded", "dir", p.cfg.SoundDir)
}

// Play starts an effect from the beginning, cutting off the same effect
// if it is still sounding. It returns immediately.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pcm, ok := p.effects[s]
	if !p.soundOn || p.out == nil || !ok {
		return
	}

	v, ok := p.voices[s]
	if !ok {
		v = p.out.NewVoice(bytes.NewReader(pcm))
		p.voices[s] = v
	} else {
		v.Pause()
		if _, err := v.Seek(0, io.SeekStart); err != nil {
			p.log.Debug("rewind effect", "sound", s, "err", err)
			return
		}
	}
	v.Play()
}

// ToggleMusic flips the music channel. When no track is loaded it retries
// loading instead.
func (p *Player) ToggleMusic() {
	if p.out == nil {
		return
	}

	p.mu.Lock()
	loaded := p.music != nil
	p.mu.Unlock()
	if !loaded {
		p.log.Info("music not loaded, retrying")
		p.loadMusic()
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.musicOn = !p.musicOn
	if p.musicOn {
		p.music.Play()
	} else {
		p.music.Pause()
	}
}

// ToggleSound flips the effects channel.
func (p *Player) ToggleSound() {
	if p.out == nil {
		return
	}
	p.mu.Lock()
	p.soundOn = !p.soundOn
	p.mu.Unlock()
}

// MusicEnabled reports whether music is loaded and switched on.
func (p *Player) MusicEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn && p.music != nil
}

// SoundEnabled reports whether effects are switched on.
func (p *Player) SoundEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.soundOn && p.out != nil
}

// Close stops the music and releases every effect voice.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for s, v := range p.voices {
		errs = append(errs, v.Close())
		delete(p.voices, s)
	}
	if p.music != nil {
		errs = append(errs, p.music.Close())
		p.music = nil
	}
	return errors.Join(errs...)
}
