package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cs-au-dk/stride/interval"
	"github.com/cs-au-dk/stride/notation"
	"github.com/cs-au-dk/stride/traverse"
	"github.com/cs-au-dk/stride/utils"

	"github.com/fatih/color"
)

// Verdict colorization, degrading to plain output under -no-colorize.
var colorize = struct {
	Yes func(...interface{}) string
	No  func(...interface{}) string
}{
	Yes: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	No: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgRed).SprintFunc())(is...)
	},
}

// parseLiteral reads a positional interval literal, fataling on bad input.
func parseLiteral(arg string) interval.Interval {
	iv, err := notation.Parse(arg)
	if err != nil {
		log.Fatalln(err)
	}
	return iv
}

func oneLiteral(args []string) interval.Interval {
	if len(args) != 1 {
		log.Fatalf("expected exactly one interval literal, got %d arguments", len(args))
	}
	return parseLiteral(args[0])
}

func twoLiterals(args []string) (interval.Interval, interval.Interval) {
	if len(args) != 2 {
		log.Fatalf("expected exactly two interval literals, got %d arguments", len(args))
	}
	return parseLiteral(args[0]), parseLiteral(args[1])
}

func sizeTask(args []string) {
	defer utils.TimeTrack(time.Now(), "size")
	iv := oneLiteral(args)
	fmt.Println(iv.Size())
}

func elementsTask(args []string) {
	defer utils.TimeTrack(time.Now(), "elements")
	iv := oneLiteral(args)

	var els []float64
	var err error
	switch {
	case opts.TakeSet():
		els, err = traverse.Take(iv, opts.Take())
	case iv.Stepped() && iv.Size().IsUnbounded():
		log.Fatalf("%s never exhausts; cap the traversal with -take", iv)
	default:
		els, err = traverse.Elements(iv)
	}
	if err != nil {
		log.Fatalln(err)
	}

	for _, v := range els {
		fmt.Println(v)
	}
	utils.VerbosePrint("%d elements\n", len(els))
}

func containsTask(args []string) {
	defer utils.TimeTrack(time.Now(), "contains")

	// The query value comes from -point, or from a second positional
	// argument.
	x := opts.Point()
	if len(args) == 2 {
		x, args = utils.ParseFloat(args[1]), args[:1]
	}
	iv := oneLiteral(args)
	utils.VerbosePrint("is %v a member of %s?\n", x, iv)
	verdict(iv.Contains(x))
}

func enclosesTask(args []string) {
	defer utils.TimeTrack(time.Now(), "encloses")
	outer, inner := twoLiterals(args)
	utils.VerbosePrint("does %s enclose %s?\n", outer, inner)
	verdict(outer.Encloses(inner))
}

func renderTask(args []string) {
	defer utils.TimeTrack(time.Now(), "render")
	iv := oneLiteral(args)
	fmt.Println(notation.Format(iv))
	opts.OnVerbose(func() {
		fmt.Println(iv)
	})
}

func verdict(ok bool) {
	if ok {
		fmt.Println(colorize.Yes("yes"))
	} else {
		fmt.Println(colorize.No("no"))
	}
}
