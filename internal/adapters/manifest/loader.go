package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrManifestReadFailed.Error()),
			"path", path,
		)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrManifestParseFailed.Error()),
			"path", path,
		)
	}

	m.normalize(path)
	if err := m.validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &m, nil
}

// Discover walks up from cwd to find the directory containing a manifest
// and returns the manifest path.
func Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
		}
		dir = parent
	}
}
