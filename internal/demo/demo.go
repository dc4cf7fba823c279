// Package demo drives a SmartList through every operation with sample and random data.
package demo

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"smartlist/lists"
	"smartlist/persist"
)

// Config controls a demo session. The zero value writes MyList.json to the working
// directory and traverses an empty random list.
type Config struct {
	// Dir is where the list snapshot is written.
	Dir string
	// File is the snapshot file name inside Dir; its extension picks the codec.
	// Empty means "MyList.json".
	File string
	// RandomElements is the size of the list used for the parallel traversal.
	RandomElements int
	// SleepUnit is how long the traversal callback sleeps per unit of element value.
	SleepUnit time.Duration
	// Workers overrides lists.DefaultWorkers when > 0.
	Workers int
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1.0e-10
}

// Run writes a narrated session to out. Failures are reported in the narration and never
// stop the session.
func Run(out io.Writer, cfg Config) {
	say := func(format string, args ...any) {
		_, _ = fmt.Fprintf(out, format, args...)
	}

	options := []lists.Option{lists.WithLogging(true), lists.WithLogOutput(out)}
	if cfg.Workers > 0 {
		options = append(options, lists.WithWorkers(cfg.Workers))
	}

	say("Creating a list and adding elements\n")
	list := lists.NewSmartList[float32](options...)
	list.AddMany(1.1, 2.5, 3.5, 5.5, 2.5, 3.3, 3.5, 5.9, 2.5, 3.9)
	_ = list.Print(out)

	file := cfg.File
	if file == "" {
		file = "MyList.json"
	}
	codec, err := persist.ByExtension(file)
	if err != nil {
		say("Unsupported snapshot file, using JSON: %v\n", err)
		codec = persist.JSON
	}
	name := filepath.Join(cfg.Dir, strings.TrimSuffix(file, filepath.Ext(file)))

	say("Saving to file\n")
	if err := list.SaveTo(name, codec); err != nil {
		say("Save failed: %v\n", err)
	}

	say("Loading from file\n")
	if err := list.LoadFrom(name, codec); err != nil {
		say("Load failed: %v\n", err)
	}
	_ = list.Print(out)

	say("Removing the first element of value 2.5\n")
	list.RemoveFirst(2.5, near)
	_ = list.Print(out)

	say("Removing all elements of value 3.5\n")
	list.RemoveAll(3.5, near)
	_ = list.Print(out)

	say("Multithreading with a new random list of %d elements\n", cfg.RandomElements)
	list.Clear()
	for range cfg.RandomElements {
		list.Add(rand.Float32() * 5)
	}
	err = list.ForEach(func(v float32) {
		time.Sleep(time.Duration(float64(cfg.SleepUnit) * float64(v)))
	})
	if err != nil {
		say("Traversal failed: %v\n", err)
	}

	say("All tests done\n")
}
