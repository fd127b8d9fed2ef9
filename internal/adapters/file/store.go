package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
)

// Store implements ports.Workspace on the local filesystem.
// Documents are indented JSON files inside the machine or arrangement folder.
type Store struct{}

var _ ports.Workspace = (*Store)(nil)

// New creates a new Store.
func New() *Store {
	return &Store{}
}

func (s *Store) LoadMachineModel(folder string) (domain.MachineModel, error) {
	return readJSON[domain.MachineModel](ModelPath(folder))
}

func (s *Store) SaveMachineModel(folder string, model domain.MachineModel) error {
	return writeJSON(ModelPath(folder), model)
}

func (s *Store) LoadMachine(folder string) (domain.Machine, error) {
	return readJSON[domain.Machine](MachinePath(folder))
}

func (s *Store) SaveMachine(folder string, machine domain.Machine) error {
	return writeJSON(MachinePath(folder), machine)
}

func (s *Store) LoadArrangementModel(folder string) (domain.ArrangementModel, error) {
	return readJSON[domain.ArrangementModel](ModelPath(folder))
}

func (s *Store) SaveArrangementModel(folder string, model domain.ArrangementModel) error {
	return writeJSON(ModelPath(folder), model)
}

func (s *Store) LoadArrangement(folder string) (domain.Arrangement, error) {
	return readJSON[domain.Arrangement](ArrangementPath(folder))
}

func (s *Store) SaveArrangement(folder string, arrangement domain.Arrangement) error {
	return writeJSON(ArrangementPath(folder), arrangement)
}

func (s *Store) RemoveMachine(folder string) error {
	return removeDocument(MachinePath(folder))
}

func (s *Store) RemoveArrangement(folder string) error {
	return removeDocument(ArrangementPath(folder))
}

func (s *Store) LoadKripkeStructure(path string) (domain.KripkeStructure, error) {
	return readJSON[domain.KripkeStructure](path)
}

func readJSON[T any](path string) (T, error) {
	var v T
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return v, nil
}

// writeJSON replaces path with the indented encoding of v.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return exportErr(path, fmt.Errorf("failed to encode: %w", err))
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return exportErr(path, err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return exportErr(path, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return exportErr(path, err)
	}
	if err := tmpFile.Sync(); err != nil {
		return exportErr(path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return exportErr(path, err)
	}

	// On Windows, os.Rename fails if dest exists.
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return exportErr(path, fmt.Errorf("a directory exists at the destination"))
		}
		if err := os.Remove(path); err != nil {
			return exportErr(path, err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return exportErr(path, err)
	}
	return nil
}

func removeDocument(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ports.ErrDocumentIsDir)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func exportErr(path string, err error) error {
	return domain.WrapError(domain.KindInvalidExportation, fmt.Sprintf("Failed to write %s:", path), err)
}
