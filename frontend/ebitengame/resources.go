package ebitengame

import (
	"bytes"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"github.com/plus3/crab/assets"
	"github.com/plus3/crab/game"
)

// Resources holds decoded images and the font plus the raw audio files, which
// are decoded once the audio context exists.
type Resources struct {
	Sprites [game.NumSprites]*ebiten.Image
	Font    *text.GoTextFaceSource
	Music   []byte
	Catch   []byte
}

// LoadResources reads and decodes every asset from fsys.
func LoadResources(fsys fs.FS) (*Resources, error) {
	res := &Resources{}

	for i := range res.Sprites {
		s := game.Sprite(i)
		img, err := loadImage(fsys, assets.SpriteFile(s))
		if err != nil {
			return nil, err
		}
		res.Sprites[i] = img
	}

	font, err := assets.ReadFile(fsys, assets.Font)
	if err != nil {
		return nil, err
	}
	res.Font, err = text.NewGoTextFaceSource(bytes.NewReader(font))
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %s", assets.Font)
	}

	if res.Music, err = assets.ReadFile(fsys, assets.Music); err != nil {
		return nil, err
	}
	if res.Catch, err = assets.ReadFile(fsys, assets.CatchSound); err != nil {
		return nil, err
	}
	return res, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	b, err := assets.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", name)
	}
	return img, nil
}
