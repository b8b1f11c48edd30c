package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/clipboard"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/config"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/export"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/history"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/latex"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/mathml"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// Event names for frontend communication
const (
	EventFormatComplete = "format-complete"
	EventExportComplete = "export-complete"
)

// App is the main Wails application controller. It wires the rewriter,
// detector, MathML lookup, history and export modules together and
// exposes them to the frontend.
type App struct {
	ctx     context.Context
	config  *config.ConfigManager
	history *history.Manager

	// Last formatting result, used by the copy and export operations.
	resultMu   sync.RWMutex
	lastResult *types.FormatResult

	// isWailsRuntime indicates if the app is running in a Wails
	// environment; used to safely skip runtime calls during tests and
	// CLI mode.
	isWailsRuntime bool
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{}
}

// NewAppWithConfig creates a new App with a custom config path. This is
// useful for testing or when a specific configuration location is needed.
func NewAppWithConfig(configPath string) (*App, error) {
	cm, err := config.NewConfigManager(configPath)
	if err != nil {
		return nil, err
	}
	return &App{config: cm}, nil
}

// SetWailsRuntime sets the Wails runtime flag. This should be called from
// main.go when the app is started in Wails mode.
func (a *App) SetWailsRuntime(isWails bool) {
	a.isWailsRuntime = isWails
}

// safeEmit safely emits an event to the frontend. It only emits events
// when running in a Wails environment.
func (a *App) safeEmit(eventName string, data ...interface{}) {
	if !a.isWailsRuntime {
		logger.Debug("event emit skipped (not in Wails runtime)",
			logger.String("event", eventName))
		return
	}
	runtime.EventsEmit(a.ctx, eventName, data...)
}

// startup is called when the app starts. It initializes the logger, the
// configuration and the history store.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.config == nil {
		cm, err := config.NewConfigManager("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
			return
		}
		a.config = cm
	}
	if err := a.config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
	}

	logDir := filepath.Dir(a.config.GetConfigPath())
	if err := logger.Init(&logger.Config{
		LogFilePath:   filepath.Join(logDir, "math-expression-formatter.log"),
		Level:         logger.LevelInfo,
		EnableConsole: a.config.GetConsoleLogging(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}

	hm, err := history.NewManager(logDir, a.config.GetHistorySize())
	if err != nil {
		logger.Error("failed to initialize history", err)
	} else {
		a.history = hm
	}

	logger.Info("application started")
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	logger.Info("application shutting down")
	logger.Close()
}

// FormatExpression converts an informally typed expression into LaTeX
// and MathML and reports the detected patterns. Formatting never fails;
// any input, including the empty string, produces a result.
func (a *App) FormatExpression(input string) (*types.FormatResult, error) {
	// Composed form so decomposed Greek input matches the glyph table.
	input = norm.NFC.String(input)

	result := &types.FormatResult{
		Input:    input,
		LaTeX:    latex.Rewrite(input),
		Patterns: latex.Detect(input),
	}
	result.MathML = mathml.ForLaTeX(result.LaTeX)
	result.Warnings = latex.CheckOutput(result.LaTeX)

	logger.Info("expression formatted",
		logger.Int("inputLen", len(input)),
		logger.Bool("einstein", result.Patterns.IsEinsteinEquation),
		logger.Bool("schrodinger", result.Patterns.IsSchrodingerEquation),
		logger.Bool("maxwell", result.Patterns.IsMaxwellEquation))

	a.resultMu.Lock()
	a.lastResult = result
	a.resultMu.Unlock()

	if a.config != nil && input != "" {
		a.config.SetLastInput(input)
		if err := a.config.Save(); err != nil {
			logger.Warn("failed to persist last input", logger.Err(err))
		}
	}
	if a.history != nil && input != "" {
		if err := a.history.Add(input, result.LaTeX, result.Patterns); err != nil {
			logger.Warn("failed to record history", logger.Err(err))
		}
	}

	a.safeEmit(EventFormatComplete, result)
	return result, nil
}

func (a *App) currentResult() (*types.FormatResult, error) {
	a.resultMu.RLock()
	defer a.resultMu.RUnlock()
	if a.lastResult == nil {
		return nil, types.NewAppError(types.ErrInvalidInput, "no formatted expression yet", nil)
	}
	return a.lastResult, nil
}

func (a *App) copyText(text string) error {
	if a.isWailsRuntime {
		if err := runtime.ClipboardSetText(a.ctx, text); err != nil {
			logger.Error("runtime clipboard write failed", err)
			return types.NewAppError(types.ErrClipboard, "failed to write to clipboard", err)
		}
		return nil
	}
	return clipboard.Write(text)
}

// CopyLaTeX copies the last result's LaTeX text to the system clipboard.
func (a *App) CopyLaTeX() error {
	result, err := a.currentResult()
	if err != nil {
		return err
	}
	return a.copyText(result.LaTeX)
}

// CopyMathML copies the last result's MathML markup to the system clipboard.
func (a *App) CopyMathML() error {
	result, err := a.currentResult()
	if err != nil {
		return err
	}
	return a.copyText(result.MathML)
}

// exportParagraphs renders the last result as the plain paragraphs the
// document writers consume.
func (a *App) exportParagraphs() ([]string, error) {
	result, err := a.currentResult()
	if err != nil {
		return nil, err
	}
	return []string{
		"Math Expression Formatter",
		"",
		"Expression: " + result.Input,
		"LaTeX: " + result.LaTeX,
		"",
		"MathML:",
		result.MathML,
	}, nil
}

// exportPath resolves the target path for an export: an explicit filename
// is placed in the export directory unless it is already absolute, and an
// empty filename gets a timestamped default.
func (a *App) exportPath(filename, ext string) string {
	if filename == "" {
		filename = "math-expression-" + time.Now().Format("20060102-150405") + ext
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	dir := "."
	if a.config != nil {
		dir = a.config.GetExportDirectory()
	}
	return filepath.Join(dir, filename)
}

// ExportDocx writes the last result to a Word document and returns the
// path of the written file.
func (a *App) ExportDocx(filename string) (string, error) {
	paragraphs, err := a.exportParagraphs()
	if err != nil {
		return "", err
	}
	path := a.exportPath(filename, ".docx")
	if err := export.WriteDocx(path, paragraphs); err != nil {
		return "", err
	}
	a.safeEmit(EventExportComplete, path)
	return path, nil
}

// ExportPDF writes the last result to a PDF document and returns the
// path of the written file.
func (a *App) ExportPDF(filename string) (string, error) {
	paragraphs, err := a.exportParagraphs()
	if err != nil {
		return "", err
	}
	path := a.exportPath(filename, ".pdf")
	if err := export.WritePDF(path, paragraphs); err != nil {
		return "", err
	}
	a.safeEmit(EventExportComplete, path)
	return path, nil
}

// GetHistory returns the formatting history, newest first.
func (a *App) GetHistory() []types.HistoryItem {
	if a.history == nil {
		return nil
	}
	return a.history.List()
}

// ClearHistory removes all remembered expressions.
func (a *App) ClearHistory() error {
	if a.history == nil {
		return nil
	}
	return a.history.Clear()
}

// GetConfig returns the current application configuration.
func (a *App) GetConfig() types.Config {
	if a.config == nil {
		return types.Config{}
	}
	return a.config.GetConfig()
}

// SetDarkMode toggles the dark preview theme and persists the choice.
func (a *App) SetDarkMode(enabled bool) error {
	if a.config == nil {
		return nil
	}
	a.config.SetDarkMode(enabled)
	return a.config.Save()
}

// GetExamples returns the built-in sample expressions for the UI.
func (a *App) GetExamples() []types.ExampleExpression {
	return types.GetExampleExpressions()
}
