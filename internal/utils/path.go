package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds input files relative to the working directory, the
// executable and the user's config directory.
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "mnembus")
		}
		return filepath.Join(homeDir, ".config", "mnembus")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "mnembus")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "mnembus")
	default:
		return filepath.Join(homeDir, ".config", "mnembus")
	}
}

// Candidates lists where name is looked for, most preferred first.
func (pr *PathResolver) Candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, name), filepath.Join(cwd, "data", name))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, name),
		filepath.Join(pr.executableDir, "data", name),
		filepath.Join(pr.configDir, "data", name),
	)
}

// Resolve returns the first candidate for name that exists. When none does,
// name is returned unchanged so the caller's error names what was asked for.
func (pr *PathResolver) Resolve(name string) string {
	for _, path := range pr.Candidates(name) {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", name, path)
			return path
		}
		log.Debugf("Candidate not found: %s", path)
	}
	return name
}

// ConfigDir returns the config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}
