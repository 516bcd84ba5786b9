package snapshot

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"portaria/internal/usecase/readmodel"
)

// Store persists the full schedule collection as one JSON document. It is
// the degraded shadow of the database: read once at startup, rewritten
// wholesale after every in-memory change.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the cached collection. A missing or corrupt file is treated
// as "no cached data" so startup never fails on the fallback path.
func (s *Store) Load() []*readmodel.ScheduleRM {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read schedule snapshot", "path", s.path, "error", err.Error())
		}
		return nil
	}

	var records []*readmodel.ScheduleRM
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("discarding corrupt schedule snapshot", "path", s.path, "error", err.Error())
		return nil
	}

	return records
}

// Save serializes the whole collection. Written to a temp file first so a
// crash mid-write cannot corrupt the previous snapshot.
func (s *Store) Save(records []*readmodel.ScheduleRM) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
