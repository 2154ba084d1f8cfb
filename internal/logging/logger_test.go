package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_LevelFollowsVerbose(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false)
	quiet.Debug().Msg("invisible")
	if buf.Len() != 0 {
		t.Errorf("Debug output at info level: %q", buf.String())
	}

	verbose := New(&buf, true)
	verbose.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Debug output missing at debug level: %q", buf.String())
	}
}

func TestNewFile_EmptyPathIsNop(t *testing.T) {
	log, closeFn, err := NewFile("", true)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	defer closeFn()
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Empty path should disable logging, level = %v", log.GetLevel())
	}
}

func TestNewFile_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dpane.log")

	log, closeFn, err := NewFile(path, false)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	log.Info().Str("key", "value").Msg("hello")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file unreadable: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "value") {
		t.Errorf("Log file content = %q", data)
	}
}
