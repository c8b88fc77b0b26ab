package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"hrdesk.co.kr/hrdesk/utils"
)

// FileStore reads and writes the CSV tables under a single data directory.
// There is no locking: concurrent writers race and the last full rewrite wins.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// ReadRows returns every row of a headerless table. A missing file is an empty table.
func (s *FileStore) ReadRows(name string) ([][]string, error) {
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return rows, nil
}

// WriteRows truncates the file and writes rows in full.
func (s *FileStore) WriteRows(name string, rows [][]string) error {
	f, err := os.Create(s.Path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := utils.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// AppendRow appends a single row, creating the file when missing.
func (s *FileStore) AppendRow(name string, row []string) error {
	f, err := os.OpenFile(s.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if err := utils.WriteCSV(f, [][]string{row}); err != nil {
		return fmt.Errorf("append %s: %w", name, err)
	}
	return nil
}

// ReadTable decodes a headered table into out, a pointer to a slice of tagged structs.
// A missing or empty file leaves out untouched. Short or long rows are
// tolerated: absent columns decode as empty values.
func (s *FileStore) ReadTable(name string, out interface{}) error {
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalCSV(utils.NewCSVReader(f), out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// WriteTable rewrites a headered table from in, a slice of tagged structs.
func (s *FileStore) WriteTable(name string, in interface{}) error {
	f, err := os.Create(s.Path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(in, f); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}
