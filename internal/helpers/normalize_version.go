package helpers

import (
	"math/big"
	"regexp"
	"strings"
)

// hyphenatedVersion matches v<a>.<b>.<c>.<d>-<suffix>. The suffix is a single line;
// one trailing newline is tolerated after it.
var hyphenatedVersion = regexp.MustCompile(`^v((?:[0-9]+\.){3})([0-9]+)-.+\n?$`)

// NormalizeVersion strips every leading 'v' from a version string.
func NormalizeVersion(version string) string {
	return strings.TrimLeft(version, "v")
}

// IsHyphenatedVersion reports whether version has the v<a>.<b>.<c>.<d>-<suffix> shape.
func IsHyphenatedVersion(version string) bool {
	return hyphenatedVersion.MatchString(version)
}

// IncrementHyphenatedVersion rewrites v<a>.<b>.<c>.<d>-<suffix> into <a>.<b>.<c>.<d+1>.
// The 'v' and the suffix are dropped. It returns false if version is not hyphenated.
func IncrementHyphenatedVersion(version string) (string, bool) {
	m := hyphenatedVersion.FindStringSubmatch(version)
	if m == nil {
		return "", false
	}

	last, ok := new(big.Int).SetString(m[2], 10)
	if !ok {
		return "", false
	}
	last.Add(last, big.NewInt(1))

	return m[1] + last.String(), true
}

// TransformVersion converts a tag into the version the installer expects.
//
//	v1.1.1.1-stuff-foo -> 1.1.1.2
//	v1.1.1.1           -> 1.1.1.1
//	vv2.0              -> 2.0
func TransformVersion(version string) string {
	if incremented, ok := IncrementHyphenatedVersion(version); ok {
		return incremented
	}
	return NormalizeVersion(version)
}
