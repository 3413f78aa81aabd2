// Package player implements the playback queue engine: an ordered queue
// of songs, a current index, and transport operations over them. The
// engine is event driven and meant for a single goroutine; every
// operation is total and degrades to a no-op on empty or out-of-range
// input instead of failing.
package player

import (
	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
)

// State is the full engine state. Only the subset in PersistedState
// survives a restart.
type State struct {
	CurrentSong  *domain.Song  `json:"currentSong"`
	Queue        []domain.Song `json:"queue"`
	CurrentIndex int           `json:"currentIndex"`
	IsPlaying    bool          `json:"isPlaying"`
	Volume       float64       `json:"volume"`
	IsMuted      bool          `json:"isMuted"`
	CurrentTime  float64       `json:"currentTime"`
	Duration     float64       `json:"duration"`
}

// Engine owns the queue state and persists it after every mutation.
type Engine struct {
	state    State
	store    StateStore
	output   Output
	onChange func(State)
	repeat   bool
	logger   *logger.Logger
}

// NewEngine restores prior state from store. Playback position and the
// playing flag always start reset regardless of what was persisted.
func NewEngine(store StateStore, log *logger.Logger) *Engine {
	e := &Engine{
		store:  store,
		logger: log.WithComponent("player"),
	}
	e.state = restore(store)
	return e
}

// State returns a copy of the current engine state.
func (e *Engine) State() State {
	s := e.state
	s.Queue = append([]domain.Song(nil), e.state.Queue...)
	return s
}

// Play makes song current and starts playback. A song already in the
// queue is jumped to in place; a new one is appended to the tail.
func (e *Engine) Play(song domain.Song) {
	idx := e.indexOf(song.ID)
	if idx == -1 {
		e.state.Queue = append(e.state.Queue, song)
		idx = len(e.state.Queue) - 1
	}
	e.state.CurrentIndex = idx
	current := e.state.Queue[idx]
	e.state.CurrentSong = &current
	e.state.IsPlaying = true
	e.outputLoad()
	e.outputPlay()
	e.persist()
}

// Pause stops playback without touching the queue or position.
func (e *Engine) Pause() {
	e.state.IsPlaying = false
	e.outputPause()
	e.persist()
}

// Resume restarts playback if there is a current song.
func (e *Engine) Resume() {
	if e.state.CurrentSong == nil {
		return
	}
	e.state.IsPlaying = true
	e.outputPlay()
	e.persist()
}

// Next advances to the following song, wrapping to the start at the
// tail. Empty queue is a no-op.
func (e *Engine) Next() {
	if len(e.state.Queue) == 0 {
		return
	}
	e.jumpTo((e.state.CurrentIndex + 1) % len(e.state.Queue))
}

// Previous steps back one song, wrapping to the tail at the start.
func (e *Engine) Previous() {
	if len(e.state.Queue) == 0 {
		return
	}
	n := len(e.state.Queue)
	e.jumpTo(((e.state.CurrentIndex-1)%n + n) % n)
}

// SetQueue replaces the queue wholesale. When no song is current yet and
// the new queue is non-empty, the first entry becomes current.
func (e *Engine) SetQueue(songs []domain.Song) {
	e.state.Queue = append([]domain.Song(nil), songs...)
	if e.state.CurrentIndex == -1 && len(e.state.Queue) > 0 {
		e.state.CurrentIndex = 0
		current := e.state.Queue[0]
		e.state.CurrentSong = &current
	}
	e.persist()
}

// AddToQueue appends without changing what is playing.
func (e *Engine) AddToQueue(song domain.Song) {
	e.state.Queue = append(e.state.Queue, song)
	e.persist()
}

// RemoveFromQueue drops the slot at index, keeping CurrentIndex pointing
// at the same song when possible. Out-of-range indexes are ignored.
func (e *Engine) RemoveFromQueue(index int) {
	if index < 0 || index >= len(e.state.Queue) {
		return
	}

	e.state.Queue = append(e.state.Queue[:index], e.state.Queue[index+1:]...)

	switch {
	case index < e.state.CurrentIndex:
		e.state.CurrentIndex--
	case index == e.state.CurrentIndex:
		if len(e.state.Queue) == 0 {
			e.state.CurrentSong = nil
			e.state.CurrentIndex = -1
			e.state.IsPlaying = false
		} else {
			if e.state.CurrentIndex >= len(e.state.Queue) {
				e.state.CurrentIndex = len(e.state.Queue) - 1
			}
			current := e.state.Queue[e.state.CurrentIndex]
			e.state.CurrentSong = &current
		}
	}
	e.persist()
}

// SetVolume sets the output volume. Zero additionally mutes; any other
// value unmutes.
func (e *Engine) SetVolume(v float64) {
	e.state.Volume = v
	e.state.IsMuted = v == 0
	e.outputVolume()
	e.persist()
}

// SetMuted toggles mute without changing the stored volume.
func (e *Engine) SetMuted(muted bool) {
	e.state.IsMuted = muted
	e.outputVolume()
	e.persist()
}

// Seek moves the playback position within the current track.
func (e *Engine) Seek(seconds float64) {
	if e.state.CurrentSong == nil {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	e.state.CurrentTime = seconds
	e.outputSeek(seconds)
	e.persist()
}

// SetCurrentTime records playback progress reported by the media
// element. Progress is transient state and is never persisted.
func (e *Engine) SetCurrentTime(seconds float64) {
	e.state.CurrentTime = seconds
	e.notify()
}

// SetDuration records the track length reported by the media element.
func (e *Engine) SetDuration(seconds float64) {
	e.state.Duration = seconds
	e.notify()
}

// SetRepeat controls what happens when a track finishes: repeat the same
// track, or move on.
func (e *Engine) SetRepeat(repeat bool) {
	e.repeat = repeat
}

// HandleTrackEnded reacts to the media element finishing the current
// track: restart it when repeat is on, otherwise advance.
func (e *Engine) HandleTrackEnded() {
	if e.repeat && e.state.CurrentSong != nil {
		e.state.CurrentTime = 0
		e.state.IsPlaying = true
		e.outputSeek(0)
		e.outputPlay()
		e.persist()
		return
	}
	e.Next()
}

func (e *Engine) jumpTo(index int) {
	e.state.CurrentIndex = index
	current := e.state.Queue[index]
	e.state.CurrentSong = &current
	e.state.CurrentTime = 0
	e.outputLoad()
	e.persist()
}

func (e *Engine) indexOf(songID string) int {
	for i := range e.state.Queue {
		if e.state.Queue[i].ID == songID {
			return i
		}
	}
	return -1
}

func (e *Engine) persist() {
	if e.store != nil {
		if err := e.store.Save(persistedFrom(e.state)); err != nil {
			e.logger.Warn("failed to persist player state", "error", err)
		}
	}
	e.notify()
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange(e.State())
	}
}
