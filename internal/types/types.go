// Package types defines core data types and enums for the math expression formatter.
package types

// Config holds the persisted application configuration.
type Config struct {
	DarkMode        bool   `json:"dark_mode"`        // dark preview theme
	ExportDirectory string `json:"export_directory"` // where exported documents are written
	HistorySize     int    `json:"history_size"`     // max number of remembered expressions
	LastInput       string `json:"last_input"`       // last formatted expression
	ConsoleLogging  bool   `json:"console_logging"`  // mirror log output to stdout
}

// PatternFlags reports which structural patterns are present in an input
// expression. All flags are computed fresh per call from the original,
// unmodified input; they are independent of the rewriter's output.
type PatternFlags struct {
	HasSubscripts         bool `json:"hasSubscripts"`
	HasSuperscripts       bool `json:"hasSuperscripts"`
	HasFractions          bool `json:"hasFractions"`
	HasGreekLetters       bool `json:"hasGreekLetters"`
	IsEinsteinEquation    bool `json:"isEinsteinEquation"`
	IsSchrodingerEquation bool `json:"isSchrodingerEquation"`
	IsMaxwellEquation     bool `json:"isMaxwellEquation"`
}

// FormatResult is the full outcome of formatting one expression.
type FormatResult struct {
	Input    string       `json:"input"`              // normalized input expression
	LaTeX    string       `json:"latex"`              // rewritten LaTeX-flavored text (best effort)
	MathML   string       `json:"mathml"`             // MathML rendering of the result
	Patterns PatternFlags `json:"patterns"`           // detector flags for the input
	Warnings []string     `json:"warnings,omitempty"` // non-fatal output checks
}

// HistoryItem is one remembered expression in the formatting history.
type HistoryItem struct {
	Input     string       `json:"input"`
	LaTeX     string       `json:"latex"`
	Patterns  PatternFlags `json:"patterns"`
	Timestamp int64        `json:"timestamp"` // Unix milliseconds
}

// ExampleExpression is a sample input shown in the UI.
type ExampleExpression struct {
	Name  string `json:"name"`
	Input string `json:"input"`
}

// GetExampleExpressions returns the built-in sample expressions.
func GetExampleExpressions() []ExampleExpression {
	return []ExampleExpression{
		{Name: "Einstein field equations", Input: "G_μν + Λg_μν = c^4/(8πG) T_μν"},
		{Name: "Schrödinger equation", Input: "iħ ∂Ψ/∂t = HΨ"},
		{Name: "Gauss's law", Input: "∇.E = rho/epsilon0"},
		{Name: "Faraday's law", Input: "∇×E = -dB/dt"},
		{Name: "Quadratic term", Input: "a x^2 + b x + c"},
		{Name: "Subscripted sequence", Input: "x_1 + x_2 + x_3"},
		{Name: "Greek letters", Input: "alpha + beta = gamma"},
		{Name: "Simple fraction", Input: "a/b + c/d"},
	}
}

// ErrorCode identifies a category of application error.
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrConfig       ErrorCode = "CONFIG_ERROR"
	ErrExport       ErrorCode = "EXPORT_ERROR"
	ErrClipboard    ErrorCode = "CLIPBOARD_ERROR"
	ErrHistory      ErrorCode = "HISTORY_ERROR"
)

// AppError is the application error type carried across module boundaries.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}
