//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"cavis/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	controlKeys  []string
	intSetter    core.IntParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.syncControls()
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and handles
// HUD interactions. The control list follows the active rule, which can
// change family between frames.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.syncControls()
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawInfo()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) syncControls() {
	provider, ok := h.sim.(core.ParameterControlsProvider)
	if !ok {
		h.controls, h.controlKeys = nil, nil
		return
	}
	controls := provider.ParameterControls()
	keys := make([]string, len(controls))
	for i, ctrl := range controls {
		keys[i] = ctrl.Key
	}
	if equalKeys(keys, h.controlKeys) {
		return
	}
	h.controlKeys = keys
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil || direction == 0 {
		return
	}
	target := adjustedValue(state.control, state.intValue, direction)
	if target == state.intValue {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, dimText)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, brightText)
		valueColor := brightText
		if !state.hasValue {
			valueColor = dimText
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

// drawInfo lists the non-adjustable parameters below the controls.
func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	y := controlsTop + max(len(h.controls), 1)*lineHeight + infoSpacing/2
	for _, group := range h.snapshot.Groups {
		if y > h.lastHeight {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += infoLine
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			value := p.Value
			if p.Type == core.ParamTypePattern && value == "" {
				value = "-"
			}
			text.Draw(h.panel, fmt.Sprintf("%-10s %s", p.Label, value), face, panelPadding, y, dimText)
			y += infoLine
		}
		y += infoLine / 2
	}
}

func (h *HUD) isControl(key string) bool {
	for _, k := range h.controlKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil {
		return false
	}
	return adjustedValue(state.control, state.intValue, direction) != state.intValue
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	brightText = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	infoLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
