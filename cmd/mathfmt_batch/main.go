// Command mathfmt_batch formats a file of expressions, one per line, and
// writes a report of the LaTeX output and detected patterns.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/latex"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mathfmt_batch <expressions.txt> [output.tex]")
		os.Exit(1)
	}

	inputPath := os.Args[1]
	f, err := os.Open(inputPath)
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var out strings.Builder
	formatted := 0
	detected := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result := latex.Rewrite(line)
		flags := latex.Detect(line)
		formatted++

		var names []string
		if flags.IsEinsteinEquation {
			names = append(names, "einstein")
		}
		if flags.IsSchrodingerEquation {
			names = append(names, "schrodinger")
		}
		if flags.IsMaxwellEquation {
			names = append(names, "maxwell")
		}
		if len(names) > 0 {
			detected++
			fmt.Printf("[%s] %s\n", strings.Join(names, ","), line)
		}

		out.WriteString(result)
		out.WriteString("\n")

		for _, w := range latex.CheckOutput(result) {
			fmt.Printf("  warning: %s\n", w)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nFormatted %d expressions, %d known equations\n", formatted, detected)

	if len(os.Args) > 2 {
		if err := os.WriteFile(os.Args[2], []byte(out.String()), 0644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", os.Args[2])
	} else {
		fmt.Print(out.String())
	}
}
