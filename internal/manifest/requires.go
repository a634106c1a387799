package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires verifies that the installer version satisfies the manifest's
// requires constraint. Versions that are not semver (such as "dev" builds)
// are accepted without a check.
func (m *Manifest) CheckRequires(version string) error {
	if m.Requires == "" {
		return nil
	}

	c, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", m.Requires, err)
	}

	v, err := parseSemver(version)
	if err != nil {
		return nil
	}

	if ok, errs := c.Validate(v); !ok {
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.Error())
		}
		return fmt.Errorf("template %q requires installer %s, running %s (%s)",
			m.Name, m.Requires, version, strings.Join(reasons, "; "))
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
