/*
Llgen generates a predictive recursive-descent parser in Go from a grammar
definition file.

Usage:

	llgen [flags] FILE

The flags are:

	-o, --output FILE
		Write the generated parser to FILE. Defaults to the input path with
		its extension replaced by ".go".

	--log FILE
		Write a debug log of the computed FIRST sets and dispatch tables
		to FILE.

	-v, --version
		Print the version and exit.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kinoro/llgen/codegen"
	"github.com/kinoro/llgen/log"
	"github.com/kinoro/llgen/parser"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

var (
	flagOutput  = pflag.StringP("output", "o", "", "write the generated parser to this path")
	flagLog     = pflag.String("log", "", "write a debug log to this path")
	flagVersion = pflag.BoolP("version", "v", false, "print the version and exit")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Println(version)
		return 0
	}

	err := run(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("no input file")
	}
	inputPath := args[0]

	outputPath := *flagOutput
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".go"
	}

	if *flagLog != "" {
		err := log.Init(*flagLog)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	psr, err := parser.NewParser(file)
	if err != nil {
		return err
	}
	gram, err := psr.Parse()
	if err != nil {
		log.Log("Failed to parse: %v", err)
		return fmt.Errorf("%v: %v", inputPath, err)
	}

	src, err := codegen.Generate(gram)
	if err != nil {
		log.Log("Failed to generate a parser: %v", err)
		return fmt.Errorf("%v: %v", inputPath, err)
	}

	err = os.WriteFile(outputPath, []byte(src), 0644)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %v\n", outputPath)

	return nil
}
