package cursorpos

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowState prints the tracker state in the top-left corner.
	ShowState bool
	// Debug enables the tracker's transition logging.
	Debug bool
	// Input replaces the Ebitengine device reader, e.g. with a Script.
	Input InputReader
}

const markerSize = 6

// runGame is the ebiten.Game used by Run.
type runGame struct {
	cfg     RunConfig
	region  *Region
	tracker *Tracker
	src     *PointerSource
	pixel   *ebiten.Image
}

// Run mounts tracker on region and runs a window that feeds it Ebitengine
// input until the window is closed. The region is drawn as a box that
// brightens while active, with a marker at the tracked position. The tracker
// is closed when Run returns.
func Run(region *Region, tracker *Tracker, cfg RunConfig) error {
	if err := tracker.Mount(region); err != nil && !errors.Is(err, ErrAlreadyMounted) {
		return err
	}
	defer tracker.Close()
	tracker.SetDebugMode(cfg.Debug)

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	g := &runGame{
		cfg:     cfg,
		region:  region,
		tracker: tracker,
		src:     NewPointerSource(region, cfg.Input),
		pixel:   pixel,
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(g)
}

func (g *runGame) Update() error {
	if err := g.src.Update(); err != nil {
		return err
	}
	g.tracker.Update(time.Second / time.Duration(max(ebiten.TPS(), 1)))
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	st := g.tracker.State()
	b := g.region.Bounds

	shade := float32(0.25 + 0.5*g.tracker.ActivationProgress())
	g.fillRect(screen, b.X, b.Y, b.Width, b.Height, shade, shade, shade+0.2)

	if !st.IsPositionOutside {
		x := b.X + st.Position.X - markerSize/2
		y := b.Y + st.Position.Y - markerSize/2
		g.fillRect(screen, x, y, markerSize, markerSize, 1, 0.8, 0.2)
	}

	if g.cfg.ShowState {
		ebitenutil.DebugPrint(screen, st.String())
	}
}

func (g *runGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *runGame) fillRect(dst *ebiten.Image, x, y, w, h float64, r, gr, b float32) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(r, gr, b, 1)
	dst.DrawImage(g.pixel, &op)
}
