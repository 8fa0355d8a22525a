// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ZshFzf contains the zsh shell integration script with fzf support.
//
//go:embed zsh-fzf.sh
var ZshFzf string

// Render renders the integration script with the zsh and ru paths filled in.
func Render() (string, error) {
	// First use LookPath to find zsh binary
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", err
	}

	return render(filepath.ToSlash(zsh), executable())
}

func render(zsh, ru string) (string, error) {
	tmpl, err := template.New("zsh-fzf").Parse(ZshFzf)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"ZSH": zsh,
		"RU":  ru,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// executable returns the path of the running binary, falling back to the
// command name.
func executable() string {
	path, err := os.Executable()
	if err != nil {
		return "ru"
	}

	return filepath.ToSlash(path)
}
