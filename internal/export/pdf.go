package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// pdfcpu create-JSON description, limited to the pieces we emit.
type pdfDescription struct {
	Pages map[string]pdfPage `json:"pages"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfContent struct {
	Text []pdfTextBox `json:"text"`
}

type pdfTextBox struct {
	Value  string  `json:"value"`
	Anchor string  `json:"anchor"`
	Dx     float64 `json:"dx"`
	Dy     float64 `json:"dy"`
	Font   pdfFont `json:"font"`
}

type pdfFont struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

// WritePDF writes the given paragraphs to path as a single-page PDF using
// pdfcpu's create API, then validates the produced file.
func WritePDF(path string, paragraphs []string) error {
	logger.Info("exporting pdf",
		logger.String("path", path),
		logger.Int("paragraphs", len(paragraphs)))

	boxes := make([]pdfTextBox, 0, len(paragraphs))
	y := 60.0
	for _, p := range paragraphs {
		if p == "" {
			y += 24
			continue
		}
		boxes = append(boxes, pdfTextBox{
			Value:  p,
			Anchor: "tl",
			Dx:     50,
			Dy:     y,
			Font:   pdfFont{Name: "Helvetica", Size: 12},
		})
		y += 24
	}

	desc := pdfDescription{Pages: map[string]pdfPage{
		"1": {Content: pdfContent{Text: boxes}},
	}}
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return types.NewAppError(types.ErrExport, "failed to encode page description", err)
	}

	jsonPath := filepath.Join(os.TempDir(), "math-expression-formatter-export.json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return types.NewAppError(types.ErrExport, "failed to write page description", err)
	}
	defer os.Remove(jsonPath)

	if err := api.CreateFile("", jsonPath, path, nil); err != nil {
		return types.NewAppError(types.ErrExport, "failed to create PDF", err)
	}
	if err := api.ValidateFile(path, nil); err != nil {
		return types.NewAppError(types.ErrExport, "produced PDF failed validation", err)
	}

	logger.Info("pdf export complete", logger.String("path", path))
	return nil
}
