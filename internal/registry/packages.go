package registry

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// mergePackages collects the package dependencies of components in order,
// one entry per package name. When two components ask for the same package
// with different specs, an exact version that satisfies the other spec
// wins; otherwise the first spec is kept and a warning is returned.
func mergePackages(components []manifest.Descriptor) ([]manifest.PackageDependency, []string) {
	var (
		merged   []manifest.PackageDependency
		warnings []string
	)
	index := map[string]int{}
	from := map[string]string{}

	for _, d := range components {
		for _, pkg := range d.PackageDependencies {
			i, ok := index[pkg.Name]
			if !ok {
				index[pkg.Name] = len(merged)
				from[pkg.Name] = d.Name
				merged = append(merged, pkg)
				continue
			}

			current := merged[i]
			winner, ok := mergeConstraint(current, pkg)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"package %s: %s requires %q but %s requires %q; using %q",
					pkg.Name, from[pkg.Name], current.Constraint, d.Name, pkg.Constraint, current.Constraint))
				continue
			}
			if winner != current {
				from[pkg.Name] = d.Name
			}
			merged[i] = winner
		}
	}
	return merged, warnings
}

// mergeConstraint picks one spec that satisfies both a and b. It reports
// false when it cannot tell that one does.
func mergeConstraint(a, b manifest.PackageDependency) (manifest.PackageDependency, bool) {
	switch {
	case a.Constraint == b.Constraint:
		return a, true
	case b.Constraint == "":
		return a, true
	case a.Constraint == "":
		return b, true
	}

	if satisfies(a.Constraint, b.Constraint) {
		return a, true
	}
	if satisfies(b.Constraint, a.Constraint) {
		return b, true
	}
	return a, false
}

// satisfies reports whether exact is a strict semantic version that meets
// constraint.
func satisfies(exact, constraint string) bool {
	v, err := semver.StrictNewVersion(exact)
	if err != nil {
		return false
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false
	}
	return c.Check(v)
}
