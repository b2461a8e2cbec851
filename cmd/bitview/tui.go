package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/xc6lx9/bitstream/chip"
	"github.com/xc6lx9/bitstream/codec"
)

// TUI is a read-only inspector over a device model: an I/O site panel, a
// logic tile panel, a routing panel, and a diagnostics panel, laid out the
// way the teacher's debugger TUI arranges its source/register/memory
// panels.
type TUI struct {
	Model *chip.Model
	Diag  *codec.Diagnostics

	App        *tview.Application
	MainLayout *tview.Flex

	IOBView   *tview.TextView
	LogicView *tview.TextView
	RouteView *tview.TextView
	DiagView  *tview.TextView
}

// NewTUI builds the inspector for the given decoded model.
func NewTUI(m *chip.Model, diag *codec.Diagnostics) *TUI {
	t := &TUI{
		Model: m,
		Diag:  diag,
		App:   tview.NewApplication(),
	}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	t.refresh()
	return t
}

func (t *TUI) initializeViews() {
	t.IOBView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.IOBView.SetBorder(true).SetTitle(" I/O Sites ")

	t.LogicView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.LogicView.SetBorder(true).SetTitle(" Logic Tiles ")

	t.RouteView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.RouteView.SetBorder(true).SetTitle(" Switches ")

	t.DiagView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.DiagView.SetBorder(true).SetTitle(" Diagnostics ")
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(t.IOBView, 0, 1, false).
		AddItem(t.LogicView, 0, 1, false).
		AddItem(t.RouteView, 0, 1, false)

	t.MainLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, false).
		AddItem(t.DiagView, 0, 1, false)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			t.App.Stop()
			return nil
		}
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) refresh() {
	t.IOBView.SetText(t.renderIOBs())
	t.LogicView.SetText(t.renderLogic())
	t.RouteView.SetText(t.renderSwitches())
	t.DiagView.SetText(t.renderDiagnostics())
}

func (t *TUI) renderIOBs() string {
	var b strings.Builder
	for i := 0; i < t.Model.NumIOBs(); i++ {
		y, x, name := t.Model.EnumIOB(i)
		dev := t.Model.IOBDeviceAt(y, x)
		if dev == nil || !dev.Instantiated {
			fmt.Fprintf(&b, "%-4s [gray]unconfigured[-]\n", name)
			continue
		}
		fmt.Fprintf(&b, "%-4s O_used=%-5v I_mux=%v\n", name, dev.OUsed, dev.IMux)
	}
	return b.String()
}

func (t *TUI) renderLogic() string {
	var b strings.Builder
	for y := 0; y < t.Model.YHeight; y++ {
		for x := 0; x < t.Model.XWidth; x++ {
			if !t.Model.HasDevice(y, x, chip.DevLogic) {
				continue
			}
			for _, role := range []chip.LogicRole{chip.LogicM, chip.LogicL, chip.LogicX} {
				dev := t.Model.LogicDeviceAt(y, x, role)
				if dev == nil || !dev.Instantiated {
					continue
				}
				fmt.Fprintf(&b, "(%d,%d) role=%d\n", y, x, role)
				for letter, lut := range dev.LUTs {
					if lut.Expr == "" {
						continue
					}
					fmt.Fprintf(&b, "  %c = %s\n", 'A'+letter, lut.Expr)
				}
			}
		}
	}
	return b.String()
}

func (t *TUI) renderSwitches() string {
	var b strings.Builder
	for y := 0; y < t.Model.YHeight; y++ {
		for x := 0; x < t.Model.XWidth; x++ {
			n := t.Model.NumSwitches(y, x)
			if n == 0 {
				continue
			}
			fmt.Fprintf(&b, "(%d,%d):\n", y, x)
			for i := 0; i < n; i++ {
				sw := t.Model.Switch(y, x, i)
				if sw == nil || !sw.Used() {
					continue
				}
				arrow := "->"
				if sw.Bidirectional() {
					arrow = "<->"
				}
				fmt.Fprintf(&b, "  %s %s %s\n",
					t.Model.SwitchStr(y, x, i, chip.SwitchFrom), arrow,
					t.Model.SwitchStr(y, x, i, chip.SwitchTo))
			}
		}
	}
	return b.String()
}

func (t *TUI) renderDiagnostics() string {
	if t.Diag == nil || t.Diag.Empty() {
		return "[green]none[-]"
	}
	var b strings.Builder
	for _, n := range t.Diag.Notes {
		fmt.Fprintf(&b, "%s\n", n)
	}
	return b.String()
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	t.App.SetRoot(t.MainLayout, true).SetFocus(t.MainLayout)
	return t.App.Run()
}
