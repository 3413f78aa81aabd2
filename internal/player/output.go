package player

import "github.com/soundvault/soundvault/internal/domain"

// Output is the media element the engine drives. Calls against it are
// asynchronous on the other side; the engine keeps its own state
// consistent regardless of when they settle, so failures are logged and
// swallowed rather than surfaced.
type Output interface {
	Load(song domain.Song) error
	Play() error
	Pause() error
	Seek(seconds float64) error
	SetVolume(volume float64, muted bool) error
}

// SetOutput attaches the media element. Passing nil detaches it.
func (e *Engine) SetOutput(out Output) {
	e.output = out
}

// OnChange registers a callback invoked with a state snapshot after
// every mutation. A nil callback unregisters.
func (e *Engine) OnChange(fn func(State)) {
	e.onChange = fn
}

func (e *Engine) outputLoad() {
	if e.output == nil || e.state.CurrentSong == nil {
		return
	}
	if err := e.output.Load(*e.state.CurrentSong); err != nil {
		e.logger.Warn("media output load failed", "error", err)
	}
}

func (e *Engine) outputPlay() {
	if e.output == nil {
		return
	}
	if err := e.output.Play(); err != nil {
		e.logger.Warn("media output play failed", "error", err)
	}
}

func (e *Engine) outputPause() {
	if e.output == nil {
		return
	}
	if err := e.output.Pause(); err != nil {
		e.logger.Warn("media output pause failed", "error", err)
	}
}

func (e *Engine) outputSeek(seconds float64) {
	if e.output == nil {
		return
	}
	if err := e.output.Seek(seconds); err != nil {
		e.logger.Warn("media output seek failed", "error", err)
	}
}

func (e *Engine) outputVolume() {
	if e.output == nil {
		return
	}
	if err := e.output.SetVolume(e.state.Volume, e.state.IsMuted); err != nil {
		e.logger.Warn("media output volume change failed", "error", err)
	}
}
