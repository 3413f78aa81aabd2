package player

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soundvault/soundvault/internal/constants"
	"github.com/soundvault/soundvault/internal/domain"
)

// PersistedState is the subset of engine state that survives a restart.
// Playback position and the playing flag deliberately do not.
type PersistedState struct {
	CurrentSong  *domain.Song  `json:"currentSong"`
	Queue        []domain.Song `json:"queue"`
	CurrentIndex int           `json:"currentIndex"`
	Volume       float64       `json:"volume"`
	IsMuted      bool          `json:"isMuted"`
}

// StateStore saves and loads the persisted subset of engine state.
type StateStore interface {
	Save(state PersistedState) error
	Load() (PersistedState, bool)
}

// FileStore keeps the persisted state as a single JSON document.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Save(state PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode player state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), constants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(fs.path, data, constants.FilePermissions); err != nil {
		return fmt.Errorf("failed to write player state: %w", err)
	}
	return nil
}

// Load returns the stored state and whether one was usable. A missing or
// corrupt file reads as absent, never as an error.
func (fs *FileStore) Load() (PersistedState, bool) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return PersistedState{}, false
	}
	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return PersistedState{}, false
	}
	return state, true
}

func persistedFrom(s State) PersistedState {
	return PersistedState{
		CurrentSong:  s.CurrentSong,
		Queue:        s.Queue,
		CurrentIndex: s.CurrentIndex,
		Volume:       s.Volume,
		IsMuted:      s.IsMuted,
	}
}

// restore builds the initial engine state from whatever the store holds.
// Playing flag, position and duration always start zeroed.
func restore(store StateStore) State {
	state := State{
		CurrentIndex: -1,
		Volume:       constants.DefaultVolume,
	}
	if store == nil {
		return state
	}

	saved, ok := store.Load()
	if !ok {
		return state
	}

	state.CurrentSong = saved.CurrentSong
	state.Queue = saved.Queue
	state.CurrentIndex = saved.CurrentIndex
	state.Volume = saved.Volume
	state.IsMuted = saved.IsMuted
	if state.Queue == nil {
		state.Queue = []domain.Song{}
	}
	if state.CurrentIndex >= len(state.Queue) || state.CurrentIndex < -1 {
		state.CurrentIndex = -1
		state.CurrentSong = nil
	}
	return state
}
