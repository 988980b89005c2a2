package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/skyhop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the panel shown while gameplay is paused.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume  func()
	OnRestart func()
	OnQuit    func()

	levelLabel *widget.Text

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI builds a centered pause panel with Resume, Restart and Quit
// buttons.
func NewPauseUI(onResume, onRestart, onQuit func()) (*PauseUI, error) {
	pui := &PauseUI{
		OnResume:  onResume,
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}
	if err := pui.loadFonts(); err != nil {
		return nil, err
	}
	pui.buildUI()
	return pui, nil
}

func (pui *PauseUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load pause font: %w", err)
	}
	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (pui *PauseUI) buildUI() {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width/2, cfg.C.Height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", &pui.titleFace, cfg.Pause.TextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	pui.levelLabel = widget.NewText(
		widget.TextOpts.Text("", &pui.normalFace, cfg.Pause.TextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(pui.levelLabel)

	panel.AddChild(pui.button("Resume", func() { call(pui.OnResume) }))
	panel.AddChild(pui.button("Restart", func() { call(pui.OnRestart) }))
	panel.AddChild(pui.button("Quit", func() { call(pui.OnQuit) }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	pui.UI = &ebitenui.UI{Container: root}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	btnImg := image.NewNineSliceColor(cfg.Pause.ButtonColor)
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle: cfg.Pause.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetLevelInfo updates the line under the title.
func (pui *PauseUI) SetLevelInfo(name, best string) {
	if best == "" {
		pui.levelLabel.Label = name
		return
	}
	pui.levelLabel.Label = fmt.Sprintf("%s  best %s", name, best)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
