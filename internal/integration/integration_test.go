package integration

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	out, err := render("/bin/zsh", "/usr/local/bin/ru")
	require.NoError(t, err)

	assert.Contains(t, out, "#!/bin/zsh\n")
	assert.Contains(t, out, "'/usr/local/bin/ru' --bytes --sort")
	assert.Contains(t, out, "{2..}")
	assert.NotContains(t, out, "{{")
}

func TestRender(t *testing.T) {
	if _, err := exec.LookPath("zsh"); err != nil {
		t.Skip("zsh not installed")
	}

	out, err := Render()
	require.NoError(t, err)

	assert.Contains(t, out, "ru-fzf-widget")
}
