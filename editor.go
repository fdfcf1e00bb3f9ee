package main

import (
	"fmt"
	"os"
	"os/exec"
)

// openInEditor writes the report to a temporary file and blocks on $EDITOR
// (vi when unset). The file is left in place so the user can keep it.
func openInEditor(report string) error {
	tmp, err := os.CreateTemp("", "glance-*.md")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := tmp.WriteString(report); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}
