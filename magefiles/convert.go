//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

// Convert builds the CLI and converts every RTF manifest under manifests/in,
// writing the workbooks to manifests/out.
func Convert() error {
	mg.Deps(Build)

	entries, err := os.ReadDir("manifests/in")
	if err != nil {
		return fmt.Errorf("reading manifests/in: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".rtf") {
			continue
		}
		paths = append(paths, filepath.Join("manifests/in", e.Name()))
	}
	if len(paths) == 0 {
		fmt.Println("No RTF manifests found under manifests/in.")
		return nil
	}

	args := append([]string{"convert", "--out-dir", "manifests/out"}, paths...)
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
