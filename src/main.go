package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"github.com/ArriVeder4i/mod-lab04-life/src/life"
	"github.com/ArriVeder4i/mod-lab04-life/src/settings"
	"github.com/ArriVeder4i/mod-lab04-life/src/view"
)

type EnvOptions struct {
	settingsFile string
	interactive  bool
	stabilize    bool
	loadFile     string
	saveFile     string
	stateFile    string
	seed         int64
}

func main() {
	eo, s := initOptions()

	o := s.Options()
	o.Seed = eo.seed
	board, err := life.NewBoard(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if eo.loadFile != "" {
		if err := board.LoadStateFile(eo.loadFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "state file %v does not exist\n", eo.loadFile)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
	}

	if eo.interactive {
		v := view.NewConsoleUI(board, view.UIOptions{
			Interval:  s.Interval(),
			Density:   s.LiveDensity,
			Window:    s.StabilizationWindow,
			StatePath: eo.stateFile,
		})
		v.Start()
		return
	}

	out := view.NewConsoleOut(board)
	out.Start(map[string]interface{}{
		"Dimension":    fmt.Sprintf("%v x %v", board.Columns, board.Rows),
		"Density":      s.LiveDensity,
		"Max steps":    s.MaxSteps,
		"Stab. window": s.StabilizationWindow,
	})

	generation := 0
	if eo.stabilize {
		generation = board.GenerationsToStabilize(s.StabilizationWindow)
	} else {
		for generation < s.MaxSteps {
			board.Advance()
			generation++
			out.Progress(generation)
		}
	}
	out.Finish(generation, eo.stabilize)

	if eo.saveFile != "" {
		if err := board.SaveStateFile(eo.saveFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Final state saved to %v\n", eo.saveFile)
	}
}

func initOptions() (eo *EnvOptions, s settings.Settings) {

	eo = &EnvOptions{stateFile: "life_state.txt"}
	s = settings.Default()
	//the settings file is read before flaggy runs so that the explicit
	//flags below override the loaded values
	if path := settingsPath(os.Args[1:]); path != "" {
		var err error
		if s, err = settings.Load(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.settingsFile, "f", "settings", "Path to the JSON settings file")
	flaggy.Int(&s.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&s.Height, "y", "height", "Height of a simulation field")
	flaggy.Int(&s.CellSize, "c", "cellSize", "Size of one cell, the board is width/cellSize x height/cellSize")
	flaggy.Float64(&s.LiveDensity, "d", "density", "Initial live cell density in [0,1]")
	flaggy.Int(&s.StabilizationWindow, "w", "window", "Stabilization window in generations")
	flaggy.Int(&s.IntervalMs, "i", "interval", "Interval between the steps in milliseconds (interactive mode)")
	flaggy.Int(&s.MaxSteps, "s", "maxSteps", "Limit the batch simulation to maxSteps")
	flaggy.Int64(&eo.seed, "", "seed", "Seed for the random source, 0 seeds from the clock")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.stabilize, "z", "stabilize", "Run until the population stabilizes instead of maxSteps")
	flaggy.String(&eo.loadFile, "l", "load", "Load the initial state from a file instead of randomizing")
	flaggy.String(&eo.saveFile, "o", "save", "Save the final state to a file on finish (batch mode)")
	flaggy.String(&eo.stateFile, "t", "state", "State file used by the interactive save/load commands")

	flaggy.Parse()

	return
}

//settingsPath extracts the settings file flag value from the raw arguments
func settingsPath(args []string) string {
	for i, a := range args {
		switch {
		case a == "-f" || a == "--settings":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--settings="):
			return strings.TrimPrefix(a, "--settings=")
		case strings.HasPrefix(a, "-f="):
			return strings.TrimPrefix(a, "-f=")
		}
	}
	return ""
}
