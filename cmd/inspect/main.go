package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/airlabcastle-commits/id-card-generator/pkg/units"
)

// inspect prints the page geometry of an exported badge PDF so a card
// template's output can be checked against the intended physical size.
func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	expectWidth := flag.Float64("expect-width", 0, "Expected page width in mm (optional)")
	expectHeight := flag.Float64("expect-height", 0, "Expected page height in mm (optional)")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	mismatches := 0
	for i, dim := range dims {
		widthMm := units.PointsToMm(dim.Width)
		heightMm := units.PointsToMm(dim.Height)

		fmt.Printf("\nPage %d:\n", i+1)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
		fmt.Printf("                             %.2f x %.2f mm\n", widthMm, heightMm)

		if *expectWidth > 0 && *expectHeight > 0 {
			if offBy(widthMm, *expectWidth) || offBy(heightMm, *expectHeight) {
				fmt.Printf("MISMATCH: expected %.2f x %.2f mm\n", *expectWidth, *expectHeight)
				mismatches++
			}
		}
	}

	if mismatches > 0 {
		fmt.Printf("\n%d of %d pages off the expected size\n", mismatches, len(dims))
		os.Exit(1)
	}
}

func offBy(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff > 0.5
}
