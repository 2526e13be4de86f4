package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the overlay shown while the window is unfocused.
type PauseUI struct {
	UI *ebitenui.UI

	titleFace text.Face
	hintFace  text.Face
}

func NewPauseUI() (*PauseUI, error) {
	pu := &PauseUI{}
	if err := pu.loadFonts(); err != nil {
		return nil, err
	}
	pu.buildUI()
	return pu, nil
}

func (pu *PauseUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("pause ui font: %w", err)
	}
	pu.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Pause.FontSize,
	}
	pu.hintFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Pause.FontSize / 2,
	}
	return nil
}

func (pu *PauseUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Pause.Title, &pu.titleFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	))
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Click the window to continue", &pu.hintFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	))

	root.AddChild(content)
	pu.UI = &ebitenui.UI{Container: root}
}

func (pu *PauseUI) Update() {
	pu.UI.Update()
}

func (pu *PauseUI) Draw(screen *ebiten.Image) {
	pu.UI.Draw(screen)
}
