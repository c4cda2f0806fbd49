package view

import (
	"fmt"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/ArriVeder4i/mod-lab04-life/src/life"
)

//ConsoleOut is the non-interactive reporter used by the batch mode
type ConsoleOut struct {
	b         *life.Board
	startTime time.Time
}

func NewConsoleOut(b *life.Board) *ConsoleOut {
	return &ConsoleOut{b: b}
}

//Start prints the running configuration and remembers the start time
func (c *ConsoleOut) Start(cfg map[string]interface{}) {
	c.startTime = time.Now()
	fmt.Println(aurora.Cyan("Running configuration:").String())
	c.printHashData(cfg)
	fmt.Println("\nSimulation started...")
}

//Progress prints the current iteration each 10 steps
func (c *ConsoleOut) Progress(generation int) {
	if generation%10 == 0 {
		fmt.Printf("  Iterations done: %v\n", generation)
	}
}

//Finish prints the final report with the analysis results
func (c *ConsoleOut) Finish(generation int, stabilized bool) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	singles, clusters := c.b.CountElements()
	resultData := map[string]interface{}{
		"Last iteration": generation,
		"Total time":     totalTime,
		"Live cells":     c.b.CountAlive(),
		"Singles":        singles,
		"Clusters":       clusters,
	}
	if stabilized {
		resultData["Stabilized after"] = fmt.Sprintf("%v generations", generation)
	}
	fmt.Println(aurora.Cyan("\nFinished:").String())
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
