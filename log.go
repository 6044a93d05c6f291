package main // import "github.com/tonobo/nomadsnake"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

var (
	// LogDir receives per-game log files. Empty means stdout for game logs
	// and nowhere for access logs.
	LogDir string
	Debug  bool
)

// LogSink opens the writer a game's records go to.
type LogSink func(game *Game, you *Snake) io.WriteCloser

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func GameLog(game *Game, you *Snake) io.WriteCloser {
	return openLog("snake", game, you, os.Stdout)
}

func AccessLog(game *Game, you *Snake) io.WriteCloser {
	return openLog("access-snake", game, you, io.Discard)
}

func openLog(prefix string, game *Game, you *Snake, fallback io.Writer) io.WriteCloser {
	if LogDir == "" {
		return nopCloser{fallback}
	}
	name, ok := logPath(prefix, game.ID, you.Name)
	if !ok {
		fmt.Fprintf(os.Stderr, "refusing log path for game %q snake %q\n", game.ID, you.Name)
		return nopCloser{fallback}
	}
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log %s: %v\n", name, err)
		return nopCloser{fallback}
	}
	return f
}

var unsafeLogChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// logPath builds the log file path inside LogDir. Request supplied parts are
// reduced to [A-Za-z0-9_-] so they cannot name another directory.
func logPath(prefix, gameID, name string) (string, bool) {
	file := fmt.Sprintf("%s-%s-%s.log", prefix,
		unsafeLogChars.ReplaceAllString(name, "_"),
		unsafeLogChars.ReplaceAllString(gameID, "_"))
	dir := filepath.Clean(LogDir)
	path := filepath.Join(dir, file)
	if filepath.Dir(path) != dir {
		return "", false
	}
	return path, true
}
