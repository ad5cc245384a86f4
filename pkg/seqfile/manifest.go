package seqfile

import (
	"encoding/json"
	"os"
	"path"
	"sort"
	"sync"
)

// Manifest tracks the segment ids owned by a store. Saves go through a temp
// file and an atomic rename.
type Manifest struct {
	dirPath  string
	rwlock   sync.RWMutex
	segments map[string]struct{}
}

func NewManifest(dirPath string) (*Manifest, error) {
	m := &Manifest{
		dirPath:  dirPath,
		segments: make(map[string]struct{}),
	}

	if err := m.readFromFile(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) Add(id string) {
	m.rwlock.Lock()
	defer m.rwlock.Unlock()
	m.segments[id] = struct{}{}
}

func (m *Manifest) Remove(id string) {
	m.rwlock.Lock()
	defer m.rwlock.Unlock()
	delete(m.segments, id)
}

func (m *Manifest) Has(id string) bool {
	m.rwlock.RLock()
	defer m.rwlock.RUnlock()
	_, ok := m.segments[id]
	return ok
}

func (m *Manifest) Segments() []string {
	m.rwlock.RLock()
	defer m.rwlock.RUnlock()

	ids := make([]string, 0, len(m.segments))
	for id := range m.segments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manifest) Save() error {
	m.rwlock.Lock()
	defer m.rwlock.Unlock()
	return m.atomicSwap()
}

func (m *Manifest) Close() error {
	return m.Save()
}

func (m *Manifest) atomicSwap() error {
	if err := m.saveToTempFile(); err != nil {
		return err
	}
	return os.Rename(path.Join(m.dirPath, "manifest.temp"), path.Join(m.dirPath, "manifest.json"))
}

func (m *Manifest) saveToTempFile() error {
	file, err := os.Create(path.Join(m.dirPath, "manifest.temp"))
	if err != nil {
		return err
	}
	defer file.Close()

	ids := make([]string, 0, len(m.segments))
	for id := range m.segments {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b, err := json.Marshal(map[string]any{
		"segments": ids,
	})
	if err != nil {
		return err
	}

	_, err = file.Write(b)
	return err
}

func (m *Manifest) readFromFile() error {
	if _, err := os.Stat(path.Join(m.dirPath, "manifest.json")); os.IsNotExist(err) {
		return m.Save()
	}

	file, err := os.Open(path.Join(m.dirPath, "manifest.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	var data struct {
		Segments []string `json:"segments"`
	}
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return err
	}

	for _, id := range data.Segments {
		m.segments[id] = struct{}{}
	}
	return nil
}
