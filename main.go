package main

import (
	"log"

	"github.com/cs-au-dk/stride/utils"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	args := utils.ParseArgs()

	switch {
	case task.IsSize():
		sizeTask(args)
	case task.IsElements():
		elementsTask(args)
	case task.IsContains():
		containsTask(args)
	case task.IsEncloses():
		enclosesTask(args)
	case task.IsRender():
		renderTask(args)
	default:
		log.Fatalln("unhandled task")
	}
}
