// Package history provides a persisted store of recently formatted
// expressions. Items are kept newest first in a JSON file and the list
// is trimmed to a configurable maximum.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// HistoryFileName is the name of the history file inside the base directory.
const HistoryFileName = "history.json"

// Manager manages the formatting history.
type Manager struct {
	filePath string
	maxItems int
	mu       sync.RWMutex
	items    []types.HistoryItem
}

// NewManager creates a history manager storing its file under baseDir.
// Existing history is loaded if present; a missing file is not an error.
func NewManager(baseDir string, maxItems int) (*Manager, error) {
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, types.NewAppError(types.ErrHistory, "failed to get home directory", err)
		}
		baseDir = filepath.Join(homeDir, ".config", "math-expression-formatter")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, types.NewAppError(types.ErrHistory, "failed to create history directory", err)
	}
	if maxItems <= 0 {
		maxItems = 50
	}

	m := &Manager{
		filePath: filepath.Join(baseDir, HistoryFileName),
		maxItems: maxItems,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Add records a formatted expression at the front of the history and
// persists the updated list. Consecutive duplicates of the same input are
// collapsed into one entry.
func (m *Manager) Add(input, latex string, patterns types.PatternFlags) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) > 0 && m.items[0].Input == input {
		m.items[0].LaTeX = latex
		m.items[0].Patterns = patterns
		m.items[0].Timestamp = time.Now().UnixMilli()
		return m.save()
	}

	item := types.HistoryItem{
		Input:     input,
		LaTeX:     latex,
		Patterns:  patterns,
		Timestamp: time.Now().UnixMilli(),
	}
	m.items = append([]types.HistoryItem{item}, m.items...)
	if len(m.items) > m.maxItems {
		m.items = m.items[:m.maxItems]
	}
	return m.save()
}

// List returns a copy of the history, newest first.
func (m *Manager) List() []types.HistoryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.HistoryItem, len(m.items))
	copy(out, m.items)
	return out
}

// Clear removes all history entries and deletes the backing file.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	if err := os.Remove(m.filePath); err != nil && !os.IsNotExist(err) {
		return types.NewAppError(types.ErrHistory, "failed to remove history file", err)
	}
	logger.Info("history cleared")
	return nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return types.NewAppError(types.ErrHistory, "failed to read history file", err)
	}
	if err := json.Unmarshal(data, &m.items); err != nil {
		// A corrupt history file is not worth failing startup over.
		logger.Warn("discarding corrupt history file", logger.String("path", m.filePath))
		m.items = nil
		return nil
	}
	if len(m.items) > m.maxItems {
		m.items = m.items[:m.maxItems]
	}
	return nil
}

func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.items, "", "  ")
	if err != nil {
		return types.NewAppError(types.ErrHistory, "failed to encode history", err)
	}
	if err := os.WriteFile(m.filePath, data, 0644); err != nil {
		return types.NewAppError(types.ErrHistory, "failed to write history file", err)
	}
	return nil
}
