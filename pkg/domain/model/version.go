package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/m-mizutani/goerr/v2"
)

// numeric segments, then an optional letter marker with an optional counter: 53.0b10, 55.0a1, 52.1.0esr
var dotVersionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)(?:([a-z]+)(\d*))?$`)

// DotVersionToTag converts a dot version into the repository tag of the product.
// "53.0b10" of "firefox" becomes "FIREFOX_53_0b10_RELEASE".
func DotVersionToTag(product, dotVersion string) string {
	return fmt.Sprintf("%s_%s_RELEASE", strings.ToUpper(product), strings.ReplaceAll(dotVersion, ".", "_"))
}

// TagDotVersion extracts the dot version embedded in a tag by joining its middle segments
func TagDotVersion(tag string) string {
	parts := strings.Split(tag, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], ".")
}

// DotVersion is a parsed release version ordered semantically: numeric segments compare as
// numbers, a lettered marker with a counter (b10, a1) is a pre-release of the numeric part.
// A marker without a counter, such as "esr", does not take part in ordering.
type DotVersion struct {
	raw string
	ver *version.Version
}

// ParseDotVersion parses a human dot version such as "53.0.1" or "53.0b10"
func ParseDotVersion(dot string) (*DotVersion, error) {
	m := dotVersionPattern.FindStringSubmatch(strings.ToLower(dot))
	if m == nil {
		return nil, goerr.New("unsupported version format", goerr.V("version", dot))
	}

	normalized := m[1]
	if m[2] != "" && m[3] != "" {
		normalized += "-" + m[2] + "." + m[3]
	}

	ver, err := version.NewVersion(normalized)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse version", goerr.V("version", dot), goerr.V("normalized", normalized))
	}

	return &DotVersion{raw: dot, ver: ver}, nil
}

// Compare returns -1, 0 or 1 when v orders before, equal to or after other
func (v *DotVersion) Compare(other *DotVersion) int {
	return v.ver.Compare(other.ver)
}

// Equal reports whether both versions share the same ordering key
func (v *DotVersion) Equal(other *DotVersion) bool {
	return v.Compare(other) == 0
}

// LessThan reports whether v orders strictly before other
func (v *DotVersion) LessThan(other *DotVersion) bool {
	return v.Compare(other) < 0
}

func (v *DotVersion) String() string {
	return v.raw
}
