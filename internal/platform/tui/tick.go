// Package tui provides the Bubble Tea integration for the search visualizer.
// It handles the terminal UI loop, input mapping, and the screen flow from
// problem picker to run view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaybackMsg is sent to trigger the next search step during timed playback.
type PlaybackMsg time.Time

// playbackSpeeds lists the available playback rates in steps per second.
var playbackSpeeds = []int{1, 2, 5, 10, 25, 50}

// defaultSpeedIndex selects 5 steps per second as the starting rate.
const defaultSpeedIndex = 2

// playbackCmd returns a Bubble Tea command that sends playback messages at
// the given rate.
func playbackCmd(stepsPerSecond int) tea.Cmd {
	interval := time.Second / time.Duration(stepsPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PlaybackMsg(t)
	})
}
