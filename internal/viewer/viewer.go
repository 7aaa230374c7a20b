// Package viewer shows a rendered figure in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until the window is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	w := &window{src: img, width: b.Dx(), height: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

type window struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (w *window) Update() error { return nil }

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
