package utils

import (
	"fmt"
	"log"
	"strconv"
	"time"
)

func TimeTrack(start time.Time, name string) {
	if Opts().Timing() {
		fmt.Printf("%s took %s\n", name, time.Since(start))
	}
}

func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

// ParseFloat function that fatals instead of returning a tuple with an error
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalln(err)
	}
	return f
}
