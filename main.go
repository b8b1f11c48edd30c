package main

import (
	"bufio"
	"context"
	"embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

// Command line flags
var (
	exprFlag = flag.String("expr", "", "Expression to format (e.g. \"G_μν + Λg_μν = c^4/(8πG) T_μν\")")
	fileFlag = flag.String("file", "", "File with one expression per line to format")
	outFlag  = flag.String("out", "", "Write LaTeX output to this file instead of stdout")
	docxFlag = flag.String("docx", "", "Export the result to a Word document at this path")
	pdfFlag  = flag.String("pdf", "", "Export the result to a PDF document at this path")
	copyFlag = flag.Bool("copy", false, "Copy the LaTeX result to the clipboard")
	cliFlag  = flag.Bool("cli", false, "Run in CLI mode without GUI")
)

// printHelp displays the help information for command line usage.
func printHelp() {
	fmt.Println("Math Expression Formatter - turn informally typed math into LaTeX and MathML")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  math-expression-formatter [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --expr <EXPR>   Expression to format")
	fmt.Println("  --file <PATH>   File with one expression per line")
	fmt.Println("  --out <PATH>    Write LaTeX output to a file instead of stdout")
	fmt.Println("  --docx <PATH>   Export the result to a Word document")
	fmt.Println("  --pdf <PATH>    Export the result to a PDF document")
	fmt.Println("  --copy          Copy the LaTeX result to the clipboard")
	fmt.Println("  --cli           Command line mode (no GUI)")
	fmt.Println("  -h, --help      Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  math-expression-formatter                          # start the GUI")
	fmt.Println("  math-expression-formatter --cli --expr \"x^2 + alpha\"")
	fmt.Println("  math-expression-formatter --cli --file exprs.txt --out exprs.tex")
	fmt.Println("  math-expression-formatter --cli --expr \"E = mc^2\" --docx result.docx")
	fmt.Println()
	fmt.Println("Without any options the program starts the graphical interface.")
	fmt.Println("With --expr the GUI starts with that expression pre-formatted.")
}

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *exprFlag != "" && *fileFlag != "" {
		fmt.Fprintln(os.Stderr, "error: only one of --expr and --file may be given")
		fmt.Println()
		printHelp()
		os.Exit(1)
	}

	if *cliFlag {
		runFormatterCLI()
		return
	}

	app := NewApp()
	app.SetWailsRuntime(true)

	startupFunc := func(ctx context.Context) {
		app.startup(ctx)

		// Pre-format a command line expression so the window opens with it.
		if *exprFlag != "" {
			go func() {
				if _, err := app.FormatExpression(*exprFlag); err != nil {
					fmt.Fprintf(os.Stderr, "failed to format expression: %v\n", err)
				}
			}()
		}
	}

	err := wails.Run(&options.App{
		Title:  "Math Expression Formatter",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 250, G: 250, B: 252, A: 1},
		OnStartup:        startupFunc,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runFormatterCLI formats the command line input without starting the GUI.
func runFormatterCLI() {
	logger.Init(&logger.Config{
		LogFilePath:   "math-expression-formatter-cli.log",
		Level:         logger.LevelInfo,
		EnableConsole: false,
	})
	defer logger.Close()

	app := NewApp()
	app.startup(context.Background())
	defer app.shutdown(context.Background())

	inputs, err := collectInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input; use --expr or --file")
		fmt.Println()
		printHelp()
		os.Exit(1)
	}

	var out strings.Builder
	for _, input := range inputs {
		result, err := app.FormatExpression(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to format %q: %v\n", input, err)
			os.Exit(1)
		}
		out.WriteString(result.LaTeX)
		out.WriteString("\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", input, w)
		}
	}

	if *outFlag != "" {
		if err := os.WriteFile(*outFlag, []byte(out.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("LaTeX written to %s\n", *outFlag)
	} else {
		fmt.Print(out.String())
	}

	// The result-based actions operate on the last formatted expression.
	if *docxFlag != "" {
		path, err := app.ExportDocx(*docxFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: docx export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Word document written to %s\n", path)
	}
	if *pdfFlag != "" {
		path, err := app.ExportPDF(*pdfFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: pdf export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF written to %s\n", path)
	}
	if *copyFlag {
		if err := app.CopyLaTeX(); err != nil {
			fmt.Fprintf(os.Stderr, "error: clipboard copy failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("LaTeX copied to clipboard")
	}
}

// collectInputs gathers the expressions to format from --expr or --file.
func collectInputs() ([]string, error) {
	if *exprFlag != "" {
		return []string{*exprFlag}, nil
	}
	if *fileFlag == "" {
		return nil, nil
	}

	f, err := os.Open(*fileFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return inputs, nil
}
