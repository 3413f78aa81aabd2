package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
)

func song(id string) domain.Song {
	return domain.Song{ID: id, Title: "Song " + id}
}

func newEngine() *Engine {
	return NewEngine(nil, logger.Default())
}

func TestPlay_AppendsNewSong(t *testing.T) {
	e := newEngine()

	e.Play(song("a"))
	s := e.State()
	require.NotNil(t, s.CurrentSong)
	assert.Equal(t, "a", s.CurrentSong.ID)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.True(t, s.IsPlaying)
	assert.Len(t, s.Queue, 1)

	e.Play(song("b"))
	s = e.State()
	assert.Equal(t, "b", s.CurrentSong.ID)
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Len(t, s.Queue, 2)
}

func TestPlay_ExistingSongJumpsWithoutDuplicating(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})

	e.Play(song("b"))
	s := e.State()
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, "b", s.CurrentSong.ID)
	assert.Len(t, s.Queue, 3)
	// Order is untouched.
	assert.Equal(t, "a", s.Queue[0].ID)
	assert.Equal(t, "c", s.Queue[2].ID)
}

func TestPauseAndResume(t *testing.T) {
	e := newEngine()

	// Resume with nothing current is a no-op.
	e.Resume()
	assert.False(t, e.State().IsPlaying)

	e.Play(song("a"))
	e.Pause()
	s := e.State()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, "a", s.CurrentSong.ID)

	e.Resume()
	assert.True(t, e.State().IsPlaying)
}

func TestNextPrevious_WrapAround(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})

	e.Next()
	assert.Equal(t, 1, e.State().CurrentIndex)
	e.Next()
	assert.Equal(t, 2, e.State().CurrentIndex)
	e.Next() // wraps
	assert.Equal(t, 0, e.State().CurrentIndex)

	e.Previous() // wraps backwards
	s := e.State()
	assert.Equal(t, 2, s.CurrentIndex)
	assert.Equal(t, "c", s.CurrentSong.ID)
}

func TestNext_FullCycleIsIdentity(t *testing.T) {
	e := newEngine()
	queue := []domain.Song{song("a"), song("b"), song("c"), song("d"), song("e")}
	e.SetQueue(queue)

	start := e.State().CurrentIndex
	for range queue {
		e.Next()
	}
	assert.Equal(t, start, e.State().CurrentIndex)
}

func TestNextPrevious_EmptyQueueNoOp(t *testing.T) {
	e := newEngine()

	e.Next()
	e.Previous()
	s := e.State()
	assert.Equal(t, -1, s.CurrentIndex)
	assert.Nil(t, s.CurrentSong)
}

func TestSetQueue_InitializesIndexOnlyWhenUnset(t *testing.T) {
	e := newEngine()

	e.SetQueue([]domain.Song{song("a"), song("b")})
	s := e.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, "a", s.CurrentSong.ID)
	assert.False(t, s.IsPlaying)

	// A later replacement keeps the current position.
	e.Next()
	e.SetQueue([]domain.Song{song("x"), song("y"), song("z")})
	assert.Equal(t, 1, e.State().CurrentIndex)
}

func TestSetQueue_EmptyKeepsUnsetIndex(t *testing.T) {
	e := newEngine()

	e.SetQueue(nil)
	s := e.State()
	assert.Equal(t, -1, s.CurrentIndex)
	assert.Nil(t, s.CurrentSong)
}

func TestAddToQueue_DoesNotTouchCurrent(t *testing.T) {
	e := newEngine()
	e.Play(song("a"))

	e.AddToQueue(song("b"))
	s := e.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, "a", s.CurrentSong.ID)
	assert.Len(t, s.Queue, 2)
}

func TestRemoveFromQueue_BeforeCurrent(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})
	e.Next() // current = b (index 1)

	e.RemoveFromQueue(0)
	s := e.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, "b", s.CurrentSong.ID)
	assert.Len(t, s.Queue, 2)
}

func TestRemoveFromQueue_TailClampsCurrent(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})
	e.Next()
	e.Next() // current = c (index 2)

	e.RemoveFromQueue(2)
	s := e.State()
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, "b", s.CurrentSong.ID)
}

func TestRemoveFromQueue_AfterCurrent(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})

	e.RemoveFromQueue(2)
	s := e.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, "a", s.CurrentSong.ID)
	assert.Len(t, s.Queue, 2)
}

func TestRemoveFromQueue_LastSongClearsState(t *testing.T) {
	e := newEngine()
	e.Play(song("a"))

	e.RemoveFromQueue(0)
	s := e.State()
	assert.Nil(t, s.CurrentSong)
	assert.Equal(t, -1, s.CurrentIndex)
	assert.False(t, s.IsPlaying)
	assert.Empty(t, s.Queue)
}

func TestRemoveFromQueue_CurrentMidQueueKeepsIndex(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b"), song("c")})
	e.Next() // current = b (index 1)

	// Removing the current slot promotes the next song into it.
	e.RemoveFromQueue(1)
	s := e.State()
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, "c", s.CurrentSong.ID)
}

func TestRemoveFromQueue_OutOfRangeNoOp(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a")})

	e.RemoveFromQueue(-1)
	e.RemoveFromQueue(5)
	assert.Len(t, e.State().Queue, 1)
}

func TestSetVolume_ZeroMutes(t *testing.T) {
	e := newEngine()

	e.SetVolume(0)
	s := e.State()
	assert.True(t, s.IsMuted)
	assert.Equal(t, 0.0, s.Volume)

	e.SetVolume(0.5)
	s = e.State()
	assert.False(t, s.IsMuted)
	assert.Equal(t, 0.5, s.Volume)
}

func TestSetMuted_IndependentOfVolume(t *testing.T) {
	e := newEngine()
	e.SetVolume(0.8)

	e.SetMuted(true)
	s := e.State()
	assert.True(t, s.IsMuted)
	assert.Equal(t, 0.8, s.Volume)
}

func TestSeek(t *testing.T) {
	e := newEngine()

	// No current song: no-op.
	e.Seek(10)
	assert.Equal(t, 0.0, e.State().CurrentTime)

	e.Play(song("a"))
	e.Seek(42.5)
	assert.Equal(t, 42.5, e.State().CurrentTime)

	e.Seek(-3)
	assert.Equal(t, 0.0, e.State().CurrentTime)
}

func TestHandleTrackEnded_AdvancesByDefault(t *testing.T) {
	e := newEngine()
	e.SetQueue([]domain.Song{song("a"), song("b")})

	e.HandleTrackEnded()
	assert.Equal(t, 1, e.State().CurrentIndex)
}

func TestHandleTrackEnded_RepeatRestartsTrack(t *testing.T) {
	e := newEngine()
	e.Play(song("a"))
	e.Seek(30)
	e.SetRepeat(true)

	e.HandleTrackEnded()
	s := e.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, 0.0, s.CurrentTime)
	assert.True(t, s.IsPlaying)
}

// Every operation must tolerate boundary states without panicking.
func TestOperationsAreTotal(t *testing.T) {
	e := newEngine()

	assert.NotPanics(t, func() {
		e.Next()
		e.Previous()
		e.Pause()
		e.Resume()
		e.Seek(99)
		e.RemoveFromQueue(0)
		e.RemoveFromQueue(-10)
		e.SetVolume(-1)
		e.SetQueue(nil)
		e.AddToQueue(song("a"))
		e.RemoveFromQueue(0)
		e.HandleTrackEnded()
	})
}
