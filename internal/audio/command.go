// Package audio plays question audio through an external command.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrNoCommand indicates that no player command is configured.
var ErrNoCommand = errors.New("no audio command configured")

// Command runs an external player such as "mpv --no-video" with the audio
// source appended as the final argument.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a command line into words with shell quoting rules,
// so `"/Applications/VLC Player/vlc" --intf dummy` keeps the path whole.
func ParseCommand(line string) (Command, error) {
	fields, err := shellwords.Parse(line)
	if err != nil {
		return Command{}, fmt.Errorf("parse audio command: %w", err)
	}
	if len(fields) == 0 {
		return Command{}, ErrNoCommand
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

// Play runs the command and waits for it to exit.
func (c Command) Play(ctx context.Context, src string) error {
	if c.Name == "" {
		return ErrNoCommand
	}
	if strings.TrimSpace(src) == "" {
		return fmt.Errorf("play audio: empty source")
	}
	args := append(append([]string{}, c.Args...), src)
	cmd := exec.CommandContext(ctx, c.Name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("play audio: %w: %s", err, msg)
		}
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}
