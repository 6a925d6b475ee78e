package site

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/effects"
)

// OG image size recommended by the major link unfurlers.
const (
	ogWidth  = 1200
	ogHeight = 630
)

// RenderOG draws the social preview image from the hero's particle
// settings. The centre of the field is cleared to leave room for a title
// overlay. A positive width scales the result down.
func RenderOG(w io.Writer, eff content.Effect, width int) error {
	f := effects.NewField(effects.Config{
		Count:  eff.Particles,
		Seed:   eff.Seed,
		Width:  ogWidth,
		Height: ogHeight,
	})
	f.Repel(ogWidth/2, ogHeight/2, ogHeight/2.5, ogHeight/3)

	pal := effects.DefaultPalette
	if eff.LinkDist > 0 {
		pal.LinkDist = eff.LinkDist
	}
	if err := png.Encode(w, effects.Thumbnail(f.Image(pal), width)); err != nil {
		return fmt.Errorf("encode og image: %w", err)
	}
	return nil
}

// ogImage caches the rendered PNG for one content set.
type ogImage struct {
	mu  sync.Mutex
	lib *content.Library
	png []byte
}

func (o *ogImage) get(lib *content.Library) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lib == lib && o.png != nil {
		return o.png, nil
	}
	var buf bytes.Buffer
	if err := RenderOG(&buf, lib.Hero.Effect, 0); err != nil {
		return nil, err
	}
	o.lib, o.png = lib, buf.Bytes()
	return o.png, nil
}

func (a *App) handleOG(c echo.Context) error {
	lib, err := a.library()
	if err != nil {
		return err
	}
	b, err := a.og.get(lib)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", b)
}
