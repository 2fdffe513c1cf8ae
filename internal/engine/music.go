package engine

import (
	"github.com/famish99/doomhal/internal/hal"
)

// TrackInfo describes the disc as reported by the driver
type TrackInfo struct {
	First  int
	Last   int
	Length int // Length of the queried track
}

// PlayTrack asks the driver to play a CD track
func (e *Engine) PlayTrack(track int) error {
	e.log.Debugf("Playing CD track %d", track)
	return hal.Check("cd play", e.music.Play(track))
}

// StopMusic stops CD playback
func (e *Engine) StopMusic() error {
	return hal.Check("cd stop", e.music.Stop())
}

// ResumeMusic resumes CD playback
func (e *Engine) ResumeMusic() error {
	return hal.Check("cd resume", e.music.Resume())
}

// SetMusicVolume sets the CD volume and remembers it in snd_musicvolume
func (e *Engine) SetMusicVolume(level int) error {
	if err := hal.Check("cd volume", e.music.SetVolume(level)); err != nil {
		return err
	}
	return e.cvars.SetInt(CvarMusicVolume, level)
}

// TrackInfo queries the disc bounds and the length of one track
func (e *Engine) TrackInfo(track int) TrackInfo {
	return TrackInfo{
		First:  e.music.FirstTrack(),
		Last:   e.music.LastTrack(),
		Length: e.music.TrackLength(track),
	}
}
