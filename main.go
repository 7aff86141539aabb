package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sairarat/2-3-Binary-Tree/cli"
	"github.com/sairarat/2-3-Binary-Tree/twothree"
)

var shouldSeed, verbose, noColor *bool
var seedNumRecords, seedMaxValue *int
var logLevel *string

func main() {
	setupFlags()
	setupLogging()

	tree := twothree.New()

	if *shouldSeed {
		n, err := cli.Seed(tree, *seedNumRecords, *seedMaxValue)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Printf("Seeded the tree with %d values.\n", n)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree, !*noColor)
	demo.Start()
}

func setupLogging() {
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatal(err)
	}
	if *verbose {
		level = logrus.DebugLevel
	}
	twothree.Log.SetLevel(level)
}

func setupFlags() {
	shouldSeed = flag.Bool("seed", false, "Seed the tree with random values created with go-faker.")
	seedNumRecords = flag.Int("records", 20, "Amount of values to seed the tree with upon startup.")
	seedMaxValue = flag.Int("max", 100, "Largest value the seed may generate.")
	verbose = flag.Bool("v", false, "Log every split, rotation and merge (same as -log-level=debug).")
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	noColor = flag.Bool("no-color", false, "Disable coloured output.")
	flag.Usage = func() {
		fmt.Println("\n2-3 Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
