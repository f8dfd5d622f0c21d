package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signalsfoundry/radar-workbench/rf"
)

func main() {
	list := flag.Bool("list", false, "list available calculators and exit")
	name := flag.String("calculator", "", "name of the calculator to evaluate")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [-list] [-calculator NAME key=value ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printCalculators()
		return
	}

	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	calc, ok := rf.Lookup(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown calculator %q (use -list to see available names)\n", *name)
		os.Exit(1)
	}

	inputs, err := parseInputs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	outputs, err := calc.Evaluate(inputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printCalculators() {
	for _, calc := range rf.Registry() {
		fmt.Printf("%s\n    %s\n", calc.Name, calc.Summary)
		for _, in := range calc.Inputs {
			fmt.Printf("    in:  %s (%s) %s\n", in.Name, in.Unit, in.Constraint)
		}
		for _, out := range calc.Outputs {
			fmt.Printf("    out: %s\n", out)
		}
	}
}

// parseInputs converts trailing key=value arguments into a numeric input map.
func parseInputs(args []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not of the form key=value", arg)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %v is not a number", arg, raw)
		}
		inputs[key] = value
	}
	return inputs, nil
}
