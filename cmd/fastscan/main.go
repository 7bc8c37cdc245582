package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"fastscan"
)

type options struct {
	file string
	mode string
}

func main() {
	opts := parseArgs()
	scanner := open(opts)
	defer scanner.Close()

	switch opts.mode {
	case "tokens":
		countTokens(scanner)
	case "lines":
		countLines(scanner)
	case "sum":
		sumNumbers(scanner)
	default:
		log.WithField("mode", opts.mode).Fatal("Unknown mode")
	}

	log.WithFields(log.Fields{
		"bytes": scanner.BytesRead(),
		"reads": scanner.NumReads(),
	}).Debug("Input consumed")
}

func parseArgs() options {
	var file string
	var mode string
	var loggingLevel string
	var json bool

	flag.StringVar(&file, "f", "", "Input file (standard input when empty)")
	flag.StringVar(&mode, "m", "tokens", "What to do with the input (tokens, lines, sum)")
	flag.StringVar(&loggingLevel, "l", "info", "Logging level (trace, debug, info, etc)")
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

	return options{file: file, mode: mode}
}

func open(opts options) *fastscan.Scanner {
	if opts.file == "" {
		return fastscan.NewStdinScanner()
	}
	scanner, err := fastscan.NewFileScanner(opts.file)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"file":  opts.file,
		}).Fatal("Cannot open input")
	}
	return scanner
}

func countTokens(scanner *fastscan.Scanner) {
	count := 0
	for scanner.HasNext() {
		if _, err := scanner.Next(); err != nil {
			log.Fatal(err)
		}
		count++
	}
	fmt.Println(count)
}

func countLines(scanner *fastscan.Scanner) {
	count := 0
	for scanner.HasNextLine() {
		if _, err := scanner.NextLine(); err != nil {
			log.Fatal(err)
		}
		count++
	}
	fmt.Println(count)
}

func sumNumbers(scanner *fastscan.Scanner) {
	sum := 0.0
	for scanner.HasNext() {
		value, err := scanner.NextDouble()
		if err != nil {
			log.Fatal(err)
		}
		sum += value
	}
	fmt.Println(sum)
}
