package ebitengame

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
	"github.com/plus3/crab/assets"
)

const sampleRate = 44100

type player interface {
	IsPlaying() bool
	Play()
	Rewind() error
}

// Sound adapts an audio player to game.Sound.
type Sound struct {
	player player
	rewind bool
}

func (s *Sound) IsPlaying() bool {
	return s.player.IsPlaying()
}

// Play starts the sound. One-shot sounds restart from the beginning; if the
// rewind fails the sound still plays from wherever the stream stands.
func (s *Sound) Play() {
	if s.rewind {
		_ = s.player.Rewind()
	}
	s.player.Play()
}

// NewSounds decodes the background music and the catch sound.
func NewSounds(ctx *audio.Context, res *Resources) (music, catch *Sound, err error) {
	ogg, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(res.Music))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decode %s", assets.Music)
	}
	mp, err := ctx.NewPlayer(ogg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "music player")
	}

	snap, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(res.Catch))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decode %s", assets.CatchSound)
	}
	cp, err := ctx.NewPlayer(snap)
	if err != nil {
		return nil, nil, errors.Wrap(err, "catch player")
	}

	return &Sound{player: mp}, &Sound{player: cp, rewind: true}, nil
}
