package view

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/ArriVeder4i/mod-lab04-life/src/life"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//UIOptions configures the interactive console session
type UIOptions struct {
	Interval  time.Duration //delay between the steps in run mode
	Density   float64       //density used by the randomize command
	Window    int           //stabilization window shown in the configuration panel
	StatePath string        //file used by the save and load commands
}

//ConsoleUI is the interactive terminal frontend over a life.Board
//the board itself is single threaded, so every mutation goes through the
//gocui main loop: key handlers run there already and the run ticker wraps
//its step in gocui.Update
type ConsoleUI struct {
	b    *life.Board
	o    UIOptions
	g    *gocui.Gui
	k    []keyBindings
	done chan struct{}

	liveFiller string
	deadFiller string

	running    bool
	generation int
	stepTime   time.Duration
	message    string

	analyzed bool
	singles  int
	clusters int
}

var (
	modeWaiting = aurora.Colorize("waiting", aurora.BlueFg).String()
	modeRunning = aurora.Colorize("running", aurora.CyanFg).String()
)

func NewConsoleUI(b *life.Board, o UIOptions) *ConsoleUI {

	var err error
	t := ConsoleUI{
		b:          b,
		o:          o,
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Randomize",
			t.cmdRandomize,
			""},
		{'a',
			"A",
			"Analyze",
			t.cmdAnalyze,
			""},
		{'f',
			"F",
			"Save state",
			t.cmdSaveState,
			""},
		{'l',
			"L",
			"Load state",
			t.cmdLoadState,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the ticker and the terminal main loop, it returns when the user exits
func (t *ConsoleUI) Start() {
	go t.runLoop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.done)
	t.g.Close()
}

//runLoop drives the board while run mode is on
//the step executes inside gocui.Update so it never races the key handlers
func (t *ConsoleUI) runLoop() {
	interval := t.o.Interval
	if interval <= 0 {
		interval = time.Millisecond * 100
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if t.running {
					t.step()
					t.Refresh()
				}
				return nil
			})
		}
	}
}

//step advances the board one generation and updates the step metrics
func (t *ConsoleUI) step() {
	start := time.Now()
	t.b.Advance()
	t.stepTime = time.Since(start)
	t.generation++
	t.analyzed = false
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if t.b.Columns > maxW || t.b.Rows > maxH {
			crop = true
		}

		var b bytes.Buffer

		for y := 0; y < t.b.Rows; y++ {
			//discard the data outside the view area
			if y >= maxH {
				break
			}
			//line feed char
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The board is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < t.b.Columns; x++ {
				if x >= maxW {
					break
				}
				if t.b.Alive(x, y) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			mode := modeWaiting
			if t.running {
				mode = modeRunning
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", t.generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.b.CountAlive()))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", t.stepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
			if t.analyzed {
				_, _ = fmt.Fprintln(v, t.renderProp("Singles", "%v", t.singles))
				_, _ = fmt.Fprintln(v, t.renderProp("Clusters", "%v", t.clusters))
			}
			if t.message != "" {
				_, _ = fmt.Fprintln(v, " "+t.message)
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.b.Columns, t.b.Rows))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.o.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Density", "%v", t.o.Density))
			_, _ = fmt.Fprintln(v, t.renderProp("Stab. window", "%v", t.o.Window))
			_, _ = fmt.Fprintln(v, t.renderProp("State file", "%v", t.o.StatePath))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.step()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.running = true
	t.message = ""
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.running = false
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.b.Clear()
	t.generation = 0
	t.analyzed = false
	t.message = ""
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.b.Randomize(t.o.Density)
	t.generation = 0
	t.analyzed = false
	t.message = ""
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdAnalyze(_ *gocui.View) error {
	t.singles, t.clusters = t.b.CountElements()
	t.analyzed = true
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdSaveState(_ *gocui.View) error {
	if err := t.b.SaveStateFile(t.o.StatePath); err != nil {
		t.message = aurora.Red(err.Error()).String()
	} else {
		t.message = "state saved to " + t.o.StatePath
	}
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdLoadState(_ *gocui.View) error {
	err := t.b.LoadStateFile(t.o.StatePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.message = aurora.Red("no saved state at " + t.o.StatePath).String()
	case err != nil:
		t.message = aurora.Red(err.Error()).String()
	default:
		t.generation = 0
		t.analyzed = false
		t.message = "state loaded from " + t.o.StatePath
	}
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.b.ToggleCell(cx, cy)
	t.analyzed = false
	t.Refresh()
	return nil
}
