package chessbot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// fakeEngineEnv turns the test binary into a UCI engine answering every
	// go command with the move it holds.
	fakeEngineEnv = "CHESSBOT_FAKE_UCI"
	// fakeEngineLogEnv names the file the fake engine appends its go
	// commands to.
	fakeEngineLogEnv = "CHESSBOT_FAKE_UCI_LOG"
)

func TestMain(m *testing.M) {
	if reply := os.Getenv(fakeEngineEnv); reply != "" {
		fakeEngine(reply, os.Getenv(fakeEngineLogEnv))
	}
	os.Exit(m.Run())
}

func fakeEngine(reply, logfile string) {
	s := bufio.NewScanner(os.Stdin)
	for s.Scan() {
		line := s.Text()
		switch {
		case line == "uci":
			fmt.Println("id name fake")
			fmt.Println("uciok")
		case line == "isready":
			fmt.Println("readyok")
		case strings.HasPrefix(line, "go"):
			if f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				fmt.Fprintln(f, line)
				f.Close()
			}
			fmt.Println("bestmove " + reply)
		}
	}
	// the player kills the process on Close
	time.Sleep(time.Hour)
	os.Exit(0)
}

func startFakeEngine(t *testing.T, reply string, moveTime time.Duration) (*UCIPlayer, string) {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)
	logfile := filepath.Join(t.TempDir(), "go.log")
	t.Setenv(fakeEngineEnv, reply)
	t.Setenv(fakeEngineLogEnv, logfile)

	p, err := NewUCIPlayer(exe, moveTime)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, p.Close()) })
	assert.Equal(t, filepath.Base(exe), p.Name())
	return p, logfile
}

func TestUCIPlayerMove(t *testing.T) {
	p, logfile := startFakeEngine(t, "e2e4", 100*time.Millisecond)
	g := chess.NewGame()

	for _, remaining := range []time.Duration{time.Hour, time.Second, 10 * time.Millisecond} {
		m, err := p.Move(g, remaining)
		require.NoError(t, err)
		assert.Equal(t, "e2e4", m.String())
	}

	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"go movetime 100", // configured move time
		"go movetime 50",  // a twentieth of the clock
		"go movetime 1",   // floor
	}, strings.Split(strings.TrimSpace(string(data)), "\n"))

	m, err := p.Move(g, time.Minute)
	require.NoError(t, err)
	assert.NoError(t, g.Move(m))
}

func TestUCIPlayerNoMove(t *testing.T) {
	// engines answer "bestmove (none)" when the side to move has no move
	p, _ := startFakeEngine(t, "(none)", 100*time.Millisecond)
	g := chess.NewGame()

	m, err := p.Move(g, time.Minute)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestNewUCIPlayerMissingEngine(t *testing.T) {
	_, err := NewUCIPlayer(filepath.Join(t.TempDir(), "no-such-engine"), time.Second)
	assert.Error(t, err)
}
