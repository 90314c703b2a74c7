package state

import "time"

// PlaybackState manages schedule playback timing. Times are in
// milliseconds of plan time; Speed scales plan time against wall time.
type PlaybackState struct {
	CurrentMS  float64
	MakespanMS float64
	Speed      float64
	Playing    bool
	lastUpdate time.Time
}

// NewPlaybackState creates a paused playback over the given horizon.
func NewPlaybackState(makespanMS int64) *PlaybackState {
	return &PlaybackState{
		MakespanMS: float64(makespanMS),
		Speed:      1.0,
		lastUpdate: time.Now(),
	}
}

// TogglePlay toggles playback, rewinding when at the end.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.CurrentMS >= p.MakespanMS {
			p.CurrentMS = 0
		}
	}
}

// Pause stops playback.
func (p *PlaybackState) Pause() {
	p.Playing = false
}

// Reset rewinds to the start.
func (p *PlaybackState) Reset() {
	p.CurrentMS = 0
	p.Playing = false
}

// Advance moves plan time forward by scaled wall time.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate)
	p.lastUpdate = now

	p.CurrentMS += elapsed.Seconds() * 1000 * p.Speed
	if p.CurrentMS >= p.MakespanMS {
		p.CurrentMS = p.MakespanMS
		p.Playing = false
	}
}

// SetTime clamps and sets the current plan time.
func (p *PlaybackState) SetTime(ms float64) {
	if ms < 0 {
		ms = 0
	}
	if ms > p.MakespanMS {
		ms = p.MakespanMS
	}
	p.CurrentMS = ms
}

// Step nudges plan time by 1% of the horizon (at least 10 ms) in
// either direction and pauses.
func (p *PlaybackState) Step(forward bool) {
	p.Pause()
	step := p.MakespanMS / 100
	if step < 10 {
		step = 10
	}
	if forward {
		p.SetTime(p.CurrentMS + step)
	} else {
		p.SetTime(p.CurrentMS - step)
	}
}

// SetSpeed clamps the speed multiplier to a usable range.
func (p *PlaybackState) SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 20 {
		speed = 20
	}
	p.Speed = speed
}

// Progress returns playback progress in [0, 1].
func (p *PlaybackState) Progress() float64 {
	if p.MakespanMS <= 0 {
		return 0
	}
	return p.CurrentMS / p.MakespanMS
}
