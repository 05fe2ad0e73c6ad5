package speech

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoCommand is returned when none of the candidate programs is installed.
var ErrNoCommand = errors.New("no suitable program found")

// Fixed configuration of the system voice.
const (
	VoiceLanguage = "fr-FR"
	VoiceRate     = 0.9
)

// command is a candidate program and how to call it.
type command struct {
	name string
	args func(arg string) []string
}

type lookPathFunc func(file string) (string, error)

type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

// first returns the first installed command.
func first(cmds []command, lookPath lookPathFunc) (command, string, error) {
	for _, c := range cmds {
		if path, err := lookPath(c.name); err == nil {
			return c, path, nil
		}
	}
	return command{}, "", ErrNoCommand
}

var players = []command{
	{name: "afplay", args: func(f string) []string { return []string{f} }},
	{name: "paplay", args: func(f string) []string { return []string{f} }},
	{name: "aplay", args: func(f string) []string { return []string{"-q", f} }},
	{name: "ffplay", args: func(f string) []string { return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", f} }},
}

// ExecPlayer plays WAV audio with the first installed system player.
type ExecPlayer struct {
	lookPath lookPathFunc
	run      runFunc
}

var _ Player = (*ExecPlayer)(nil)

// NewExecPlayer creates a player that shells out to afplay, paplay, aplay
// or ffplay.
func NewExecPlayer() *ExecPlayer {
	return &ExecPlayer{lookPath: exec.LookPath, run: runCommand}
}

// Play writes wav to a temporary file and plays it to completion.
func (p *ExecPlayer) Play(ctx context.Context, wav []byte) error {
	cmd, path, err := first(players, p.lookPath)
	if err != nil {
		return fmt.Errorf("audio player: %w", err)
	}

	f, err := os.CreateTemp("", "elan-*.wav")
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(wav); err != nil {
		f.Close()
		return fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close audio file: %w", err)
	}

	return p.run(ctx, path, cmd.args(f.Name())...)
}

// wordsPerMinute is the default speed of say and espeak.
const wordsPerMinute = 175

func scaledWPM() string {
	return strconv.Itoa(int(math.Round(wordsPerMinute * VoiceRate)))
}

var voices = []command{
	{name: "say", args: func(t string) []string { return []string{"-v", "Thomas", "-r", scaledWPM(), t} }},
	{name: "espeak-ng", args: func(t string) []string { return []string{"-v", "fr", "-s", scaledWPM(), t} }},
	{name: "espeak", args: func(t string) []string { return []string{"-v", "fr", "-s", scaledWPM(), t} }},
	{name: "spd-say", args: func(t string) []string {
		// spd-say rates run from -100 to 100 around the default.
		rate := strconv.Itoa(int(math.Round((VoiceRate - 1) * 100)))
		return []string{"-w", "-l", "fr", "-r", rate, t}
	}},
}

// SystemVoice speaks French with the first installed speech program.
type SystemVoice struct {
	lookPath lookPathFunc
	run      runFunc
}

var _ Voice = (*SystemVoice)(nil)

// NewSystemVoice creates the local fallback voice.
func NewSystemVoice() *SystemVoice {
	return &SystemVoice{lookPath: exec.LookPath, run: runCommand}
}

// Say speaks text and waits for it to finish.
func (v *SystemVoice) Say(ctx context.Context, text string) error {
	cmd, path, err := first(voices, v.lookPath)
	if err != nil {
		return fmt.Errorf("system voice: %w", err)
	}
	return v.run(ctx, path, cmd.args(operand(text))...)
}

// operand keeps text that starts with a dash from being parsed as a flag.
// A leading space is silent.
func operand(text string) string {
	if strings.HasPrefix(text, "-") {
		return " " + text
	}
	return text
}
