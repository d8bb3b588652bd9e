package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".machealth", "config.yaml"),
		"/etc/machealth/config.yaml",
	}
}
