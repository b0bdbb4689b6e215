package main

import (
	"fmt"
	"image/color"
	"strconv"

	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// scoreLabel is the pause menu line showing the score at the time of pausing.
type scoreLabel struct {
	text  *widget.Text
	value int
}

func (s *scoreLabel) Set(score int) {
	s.value = score
	s.text.Label = fmt.Sprintf("Score: %d", score)
}

// NewPauseUI builds a centered pause menu with the score and Resume, Copy
// score and Quit buttons. Buttons use colored nine-slices and the built-in
// basic font, so no theme assets are needed.
func NewPauseUI(g *Game) (*ebitenui.UI, *scoreLabel) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	score := &scoreLabel{text: widget.NewText(
		widget.TextOpts.Text("Score: 0", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	resumeBtn := button("Resume", func() {
		g.setPaused(false)
	})

	// clipboard needs a display server; without one the button is left out.
	var copyBtn *widget.Button
	if err := clipboard.Init(); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
	} else {
		copyBtn = button("Copy score", func() {
			clipboard.Write(clipboard.FmtText, []byte(strconv.Itoa(score.value)))
			g.logger.Info("score copied", "score", score.value)
		})
	}

	quitBtn := button("Quit", func() {
		g.quit = true
	})

	width, height := g.spec.Window.Width, g.spec.Window.Height
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/3, height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(score.text)
	panel.AddChild(resumeBtn)
	if copyBtn != nil {
		panel.AddChild(copyBtn)
	}
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, score
}
