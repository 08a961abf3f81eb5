package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docstamp/go-docstamp/pkg/docstamp"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("docstamp version %s\n", version)
	case "stamp":
		if len(os.Args) != 5 {
			fmt.Println("Usage: docstamp stamp <template.docx> <data.json> <output.docx>")
			os.Exit(1)
		}
		if err := stamp(os.Args[2], os.Args[3], os.Args[4]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("docstamp - placeholder stamping for DOCX files")
	fmt.Println("\nUsage: docstamp <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  stamp <template> <data> <output>    Stamp a template with values from a JSON file")
	fmt.Println("  version                             Show version information")
}

func stamp(templatePath, dataPath, outputPath string) error {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var data docstamp.StampData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}

	stamper := docstamp.New()
	if err := stamper.StampFile(templatePath, outputPath, data); err != nil {
		return err
	}

	fmt.Printf("Stamped %s -> %s\n", templatePath, outputPath)
	return nil
}
