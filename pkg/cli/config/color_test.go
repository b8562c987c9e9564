package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openrport/release-id/pkg/cli/config"
)

func TestColorEnabled(t *testing.T) {
	t.Run("buffer is not a terminal", func(t *testing.T) {
		gt.False(t, config.ColorEnabled(&bytes.Buffer{}))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
		gt.NoError(t, err)
		defer f.Close()

		gt.False(t, config.ColorEnabled(f))
	})

	t.Run("NO_COLOR disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		gt.False(t, config.ColorEnabled(os.Stderr))
	})
}
