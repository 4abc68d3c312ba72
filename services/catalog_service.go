package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

const (
	careersFile        = "careers.json"
	programCareersFile = "program-careers.json"
)

// CatalogService serves the static career and program catalogs. The JSON
// files are read once at startup and re-read when they change on disk; a
// reload that fails keeps the previous catalog.
type CatalogService struct {
	dir string
	log *zap.Logger

	mu       sync.RWMutex
	careers  []models.Career
	programs models.ProgramCareers
}

func NewCatalogService(dir string, log *zap.Logger) (*CatalogService, error) {
	s := &CatalogService{dir: dir, log: log}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CatalogService) reload() error {
	var careers []models.Career
	if err := readJSONFile(filepath.Join(s.dir, careersFile), &careers); err != nil {
		return err
	}
	var programs models.ProgramCareers
	if err := readJSONFile(filepath.Join(s.dir, programCareersFile), &programs); err != nil {
		return err
	}

	s.mu.Lock()
	s.careers = careers
	s.programs = programs
	s.mu.Unlock()
	return nil
}

func readJSONFile(path string, dst interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Watch re-reads the catalog whenever either file changes. Blocks until the
// watcher fails; run it on its own goroutine.
func (s *CatalogService) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if name != careersFile && name != programCareersFile {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.reload(); err != nil {
				s.log.Error("catalog reload failed, keeping previous", zap.Error(err))
				continue
			}
			s.log.Info("catalog reloaded", zap.String("file", name))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("catalog watcher error", zap.Error(err))
		}
	}
}

// Careers returns the full catalog.
func (s *CatalogService) Careers() []models.Career {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Career, len(s.careers))
	copy(out, s.careers)
	return out
}

// Career looks up one record by id.
func (s *CatalogService) Career(id string) (models.Career, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.careers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Career{}, false
}

// ByProgram filters careers to those a program leads to. An unknown program
// id yields the empty list, not an error.
func (s *CatalogService) ByProgram(programID string) []models.Career {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids, ok := s.programs[programID]
	if !ok {
		return []models.Career{}
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]models.Career, 0, len(ids))
	for _, c := range s.careers {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// FilterByTitle narrows a career slice by case-insensitive title substring.
func FilterByTitle(careers []models.Career, term string) []models.Career {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return careers
	}
	out := []models.Career{}
	for _, c := range careers {
		if strings.Contains(strings.ToLower(c.Title), term) {
			out = append(out, c)
		}
	}
	return out
}

// Search matches career titles case-insensitively by substring.
func (s *CatalogService) Search(term string) []models.Career {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.Careers()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Career{}
	for _, c := range s.careers {
		if strings.Contains(strings.ToLower(c.Title), term) {
			out = append(out, c)
		}
	}
	return out
}
