package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/classboard/internal/models"
)

// ErrInvalidProject is returned for project files that are not usable.
var ErrInvalidProject = errors.New("invalid project file")

const (
	projectPrefix = "classboard-project_"
	projectGlob   = projectPrefix + "*.json"
)

var projectValidate = validator.New()

// projectFile is the on-disk shape. Pointers tell absent keys from empty ones.
type projectFile struct {
	CapacityClass *models.CapacityClass `json:"schoolLevel"`
	GroupCount    *int                  `json:"classCount"`
	People        *[]models.Person      `json:"students" validate:"required"`
	Labels        *[]models.Label       `json:"tags" validate:"required"`
	Rules         *[]models.Rule        `json:"separationRules"`
}

// ProjectFileName names a project saved at now.
func ProjectFileName(now time.Time) string {
	return projectPrefix + now.Format("2006-01-02") + ".json"
}

// EncodeProject writes state as an indented project document.
func EncodeProject(w io.Writer, state models.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// DecodeProject parses a project document. The people and label lists must
// be present; missing settings fall back to defaults and missing rules to none.
// The result is not normalized.
func DecodeProject(r io.Reader, defaults models.Settings) (models.AppState, error) {
	var f projectFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	if err := projectValidate.Struct(f); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	state := models.AppState{
		Settings: defaults,
		People:   *f.People,
		Labels:   *f.Labels,
		Rules:    []models.Rule{},
	}
	if f.CapacityClass != nil && *f.CapacityClass != "" {
		state.CapacityClass = *f.CapacityClass
	}
	if f.GroupCount != nil && *f.GroupCount != 0 {
		state.GroupCount = *f.GroupCount
	}
	if f.Rules != nil {
		state.Rules = *f.Rules
	}
	return state, nil
}

// Projects stores project files in a directory.
type Projects struct {
	fs       billy.Filesystem
	defaults models.Settings
}

// NewProjects creates a Projects over fs. defaults fill settings missing
// from imported files.
func NewProjects(fs billy.Filesystem, defaults models.Settings) *Projects {
	return &Projects{fs: fs, defaults: defaults}
}

// Save writes state under today's project file name and returns that name.
// A second save on the same day overwrites the first.
func (p *Projects) Save(state models.AppState, now time.Time) (string, error) {
	name := ProjectFileName(now)
	f, err := p.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := EncodeProject(f, state); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return name, nil
}

// Open reads and decodes a project file.
func (p *Projects) Open(name string) (models.AppState, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()
	return DecodeProject(f, p.defaults)
}

// List returns the saved project file names, newest first.
func (p *Projects) List() ([]string, error) {
	names, err := util.Glob(p.fs, projectGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
