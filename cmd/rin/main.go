package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"rin"
)

type rinSettings struct {
	File string
	Mode string
}

func main() {
	settings := parseArgs()

	if settings.Mode == "ask" {
		// The interactive mode goes through the shared stdin stream,
		// not a private one
		askAndSum()
		return
	}

	stream := openStream(settings)
	defer stream.Close()

	switch settings.Mode {
	case "tokens":
		printTokens(stream)
	case "sum":
		sumIntegers(stream)
	case "count":
		countTokens(stream)
	default:
		log.WithFields(log.Fields{"mode": settings.Mode}).Fatal("Unknown mode")
	}

	stats := stream.Stats()
	log.WithFields(log.Fields{
		"bytes": stats.In,
		"reads": stats.Reads,
	}).Debug("Source drained")
}

func parseArgs() rinSettings {
	var file string
	var mode string
	var loggingLevel string
	var json bool

	flag.StringVar(&file, "f", "", "Input file (defaults to stdin)")
	flag.StringVar(&mode, "m", "tokens", "Mode (tokens, sum, count or ask)")
	flag.StringVar(&loggingLevel, "l", "warn", "Logging level (trace, debug, info, etc)")
	flag.BoolVar(&json, "j", false, "JSON logger formatter")

	flag.Parse()

	if json {
		log.SetFormatter(&log.JSONFormatter{})
	}

	level, err := log.ParseLevel(loggingLevel)
	if err != nil {
		log.Fatal(err)
	}

	log.SetLevel(level)

	return rinSettings{
		File: file,
		Mode: mode,
	}
}

func openStream(settings rinSettings) *rin.Stream {
	if settings.File == "" {
		return rin.New(os.Stdin)
	}
	stream, err := rin.Open(settings.File)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"file":  settings.File,
		}).Fatal("Couldn't open the input file")
	}
	return stream
}

func printTokens(stream *rin.Stream) {
	for {
		token, ok := stream.NextToken()
		if !ok {
			break
		}
		fmt.Println(token)
	}
}

func sumIntegers(stream *rin.Stream) {
	var total, n int64
	for rin.Scan(stream, &n) {
		total += n
	}
	if stream.Valid() {
		log.Warn("Stopped at a token that is not an integer")
	}
	fmt.Println(total)
}

func askAndSum() {
	rin.Prompt("How many numbers? ")
	count := rin.ReadNext[int]()

	total := 0
	for i := 0; i < count; i++ {
		rin.Prompt("#%v: ", i+1)
		total += rin.ReadNext[int]()
	}

	fmt.Printf("Sum: %v\n", total)
	rin.Prompt("Press enter to quit.")
	rin.Pause()
}

func countTokens(stream *rin.Stream) {
	count := 0
	for {
		if _, ok := stream.NextToken(); !ok {
			break
		}
		count++
	}
	fmt.Println(count)
}
