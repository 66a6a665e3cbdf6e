package systems

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// AudioSystem handles background music playback
type AudioSystem struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmFile      *os.File
	volume       float64
	sampleRate   int
}

// NewAudioSystem creates a new audio system
func NewAudioSystem() *AudioSystem {
	sampleRate := 44100
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		volume:       0.5,
		sampleRate:   sampleRate,
	}
}

// PlayBGM starts looping background music from an .mp3 or .ogg file
func (s *AudioSystem) PlayBGM(path string) error {
	s.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	var (
		stream io.ReadSeeker
		length int64
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		var s16 *mp3.Stream
		s16, err = mp3.DecodeWithSampleRate(s.sampleRate, file)
		if err == nil {
			stream, length = s16, s16.Length()
		}
	case ".ogg":
		var s16 *vorbis.Stream
		s16, err = vorbis.DecodeWithSampleRate(s.sampleRate, file)
		if err == nil {
			stream, length = s16, s16.Length()
		}
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}

	s.bgmFile = file
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

// IsBGMPlaying returns whether background music is currently playing.
// A nil system never plays.
func (s *AudioSystem) IsBGMPlaying() bool {
	return s != nil && s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

// SetVolume sets the volume for background music (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
	if s.bgmPlayer != nil {
		s.bgmPlayer.SetVolume(volume)
	}
}

// Volume returns the current volume setting
func (s *AudioSystem) Volume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() {
	s.StopBGM()
}
