package main

import "path/filepath"

// defaultArtifacts is the built-in deny list applied while SkipArtifacts is
// on. Patterns match the base name of an entry at any depth: dependency
// directories, compiled output, caches and lockfiles that add bulk without
// adding signal.
var defaultArtifacts = []string{
	".git", ".hg", ".svn",
	"node_modules", "bower_components", "jspm_packages",
	"vendor", "target", "dist", "build", "out", "bin", "obj",
	"__pycache__", ".venv", "venv", ".tox", ".mypy_cache", ".pytest_cache",
	".next", ".nuxt", ".cache", ".gradle", ".terraform",
	"coverage", ".nyc_output",
	".idea", ".vscode", ".DS_Store", "Thumbs.db",
	"*.pyc", "*.pyo", "*.o", "*.a", "*.so", "*.dylib", "*.dll",
	"*.class", "*.jar", "*.exe", "*.min.js", "*.min.css",
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb",
	"Cargo.lock", "go.sum", "poetry.lock", "Pipfile.lock",
	"Gemfile.lock", "composer.lock",
}

// compileArtifacts builds the deny-list matcher once per scanner.
func compileArtifacts() (*patternSet, error) {
	return compilePatterns(defaultArtifacts)
}

// isHiddenName reports whether a base name is a dotfile. "." and ".." are
// never hidden.
func isHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	base := filepath.Base(name)
	return len(base) > 0 && base[0] == '.'
}
