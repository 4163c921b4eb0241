package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cs-au-dk/stride/utils/slices"
)

type options struct {
	task       string
	point      float64
	take       uint
	epsilon    float64
	noColorize bool
	verbose    bool
	timing     bool
}

const (
	_SIZE = iota
	_ELEMENTS
	_CONTAINS
	_ENCLOSES
	_RENDER
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"size",
	"Report how many elements the interval literal denotes, or ∞ when it is not finitely countable",
}, {
	"elements",
	"Enumerate the elements of the interval literal in traversal order. Unbounded traversals must be capped with -take",
}, {
	"contains",
	"Decide whether the value given with -point (or as a second argument) is a member of the interval literal",
}, {
	"encloses",
	"Decide whether the second interval literal is fully contained in the first",
}, {
	"render",
	"Echo the interval literal in its canonical and pretty forms",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) Timing() bool {
	return opts.timing
}

// Epsilon is the absolute tolerance used when deciding whether a value
// lands on a step grid.
func (optInterface) Epsilon() float64 {
	return opts.epsilon
}

func (optInterface) Point() float64 {
	return opts.point
}

func (optInterface) Take() int {
	return int(opts.take)
}

func (optInterface) TakeSet() bool {
	return opts.take > 0
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsSize() bool {
	return opts.task == task[_SIZE].flag
}

func (taskInterface) IsElements() bool {
	return opts.task == task[_ELEMENTS].flag
}

func (taskInterface) IsContains() bool {
	return opts.task == task[_CONTAINS].flag
}

func (taskInterface) IsEncloses() bool {
	return opts.task == task[_ENCLOSES].flag
}

func (taskInterface) IsRender() bool {
	return opts.task == task[_RENDER].flag
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.StringVar(&(opts.task), "task", task[_RENDER].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.Float64Var(&(opts.point), "point", 0, "the query value for the contains task")
	flag.UintVar(&(opts.take), "take", 0, "cap enumeration at the first n elements; required for unbounded traversals")
	flag.Float64Var(&(opts.epsilon), "epsilon", 1e-9, "absolute tolerance for step grid alignment checks")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.timing), "timing", false, "report how long each task took")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() []string {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	_, validTask := slices.Find(task, func(t struct{ flag, explanation string }) bool {
		return t.flag == opts.task
	})
	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	if opts.epsilon < 0 {
		log.Fatalf("Value %v is not valid for -epsilon", opts.epsilon)
	}

	return flag.Args()
}
