package main

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the input looks like a git repository URL.
// The .git suffix and the SSH scp-like form are unambiguous; plain
// http(s) URLs are treated as web pages instead.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones url into a fresh temporary directory and returns its
// path. The clone is shallow and single-branch; ref selects a branch or
// tag, empty means the remote HEAD. The caller owns the returned directory
// and removes it when done.
func cloneGitRepo(url, ref string) (string, error) {
	tempDir, err := os.MkdirTemp("", "glance-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	options := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
		Progress:     os.Stderr,
	}
	if ref == "" {
		options.ReferenceName = plumbing.HEAD
	} else {
		options.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}

	_, err = git.PlainClone(tempDir, false, options)
	if err != nil && ref != "" {
		// The ref may name a tag rather than a branch; retry once.
		options.ReferenceName = plumbing.NewTagReferenceName(ref)
		_ = os.RemoveAll(tempDir)
		if tempDir, err = os.MkdirTemp("", "glance-git-"); err != nil {
			return "", fmt.Errorf("failed to create temporary directory: %w", err)
		}
		_, err = git.PlainClone(tempDir, false, options)
	}
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %s: %w", url, err)
	}
	return tempDir, nil
}
