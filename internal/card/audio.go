package card

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AudioPlayer plays a question's audio reference. The source is passed
// through unmodified.
type AudioPlayer interface {
	Play(ctx context.Context, src string) error
}

// AudioMsg reports the end of a playback started by the card.
type AudioMsg struct {
	QuestionID string
	Source     string
	Err        error
}

// audioTimeout bounds a single playback.
const audioTimeout = 2 * time.Minute

// PlayAudio returns a command playing the question's audio, or nil when the
// question has none or no player is configured.
func (m Model) PlayAudio() tea.Cmd {
	q := m.props.Question
	if m.player == nil || !q.HasAudio() {
		return nil
	}
	player := m.player
	id, src := q.ID, q.AudioURL
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), audioTimeout)
		defer cancel()
		err := player.Play(ctx, src)
		return AudioMsg{QuestionID: id, Source: src, Err: err}
	}
}
