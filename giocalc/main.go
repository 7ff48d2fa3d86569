package main

//go:generate go run gioui.org/cmd/gogio -target android -appid org.gioui.giocalc -o giocalc.apk .

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/giocalc/internal/calc"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	funcColor        = color.NRGBA{70, 80, 95, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	recordColor      = color.NRGBA{170, 170, 170, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(400)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    session
	theme   *material.Theme
	buttons [6][4]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme) *calcUI {
	ui := &calcUI{theme: theme}
	decimal := ui.special(".", func() { ui.calc.digit(".") })
	ui.buttons = [6][4]*button{
		{ui.op(calc.SymClear, specialColor), ui.op(calc.SymNegate, specialColor), ui.op(calc.SymPercent, specialColor), ui.op(calc.SymDiv, opColor)},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.op(calc.SymMul, opColor)},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.op(calc.SymSub, opColor)},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.op(calc.SymAdd, opColor)},
		{ui.digit("0"), decimal, ui.op(calc.SymPi, funcColor), ui.op(calc.SymEquals, opColor)},
		{ui.op(calc.SymE, funcColor), ui.op(calc.SymSqrt, funcColor), ui.op(calc.SymSin, funcColor), ui.op(calc.SymCos, funcColor)},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(input string) *button {
	b := newButton(input, digitColor)
	b.action = func() { ui.calc.digit(input) }
	return b
}

// op creates an operation button.
func (ui *calcUI) op(symbol string, color color.NRGBA) *button {
	b := newButton(symbol, color)
	b.action = func() { ui.calc.perform(symbol) }
	b.symbol = symbol
	return b
}

// special creates a special operation button.
func (ui *calcUI) special(name string, fn func()) *button {
	b := newButton(name, specialColor)
	b.action = fn
	return b
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(25, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(75, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Flexed(1, ui.layoutRecordText),
			layout.Flexed(2, ui.layoutResultText),
		)
	})
}

func (ui *calcUI) layoutRecordText(gtx layout.Context) layout.Dimensions {
	return ui.layoutText(gtx, ui.calc.record(), recordColor)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	return ui.layoutText(gtx, ui.calc.text(), resultColor)
}

// layoutText draws a right-aligned line that fills the available height.
func (ui *calcUI) layoutText(gtx layout.Context, txt string, color color.NRGBA) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, txt)
	l.Color = color
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked(gtx) && b.action != nil {
		b.action()
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.text)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if b.symbol != "" && ui.calc.active(b.symbol) {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.calc.text()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.calc.paste(ev.Text)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// keySymbols maps keys to operation symbols.
var keySymbols = map[string]string{
	"+":            calc.SymAdd,
	"*":            calc.SymMul,
	"/":            calc.SymDiv,
	"%":            calc.SymPercent,
	"=":            calc.SymEquals,
	key.NameEnter:  calc.SymEquals,
	key.NameReturn: calc.SymEquals,
	key.NameEscape: calc.SymClear,
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		ui.calc.digit(e.Name)
	case key.NameDeleteBackward, key.NameDeleteForward:
		ui.calc.rubout()
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.calc.perform(calc.SymNegate)
		} else {
			ui.calc.perform(calc.SymSub)
		}
	default:
		if symbol, ok := keySymbols[e.Name]; ok {
			ui.calc.perform(symbol)
		}
	}
}

// button is a clickable button.
type button struct {
	text   string
	symbol string // operation symbol, empty for digits
	action func()

	color   color.NRGBA
	clicker widget.Clickable
}

func newButton(text string, color color.NRGBA) *button {
	return &button{text: text, color: color}
}

func main() {
	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window) error {
	var (
		th  = material.NewTheme()
		ui  = newUI(th)
		ops op.Ops
	)
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
