package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Path is a parsed derivation path: an ordered list of child indexes with
// the hardened bit already applied, plus whether the terminal key should be
// the public one ("M/..." form).
type Path struct {
	Public  bool
	Indexes []uint32
}

// ParsePath parses an absolute derivation path like "m/44'/0'/0'/0/0".
// The leading element must be "m" (private) or "M" (public); hardened
// indexes are marked with ', h or H.
func ParsePath(pathString string) (*Path, error) {
	parts := strings.Split(pathString, "/")

	var public bool
	switch parts[0] {
	case "m":
		public = false
	case "M":
		public = true
	default:
		return nil, errors.Errorf("derivation path must start with m/ or M/ but got %q", pathString)
	}

	indexes, err := parseIndexes(parts[1:])
	if err != nil {
		return nil, err
	}

	return &Path{Public: public, Indexes: indexes}, nil
}

// ParseRelativePath parses a path without the leading m/M element, e.g.
// "0'/0/0" as used for coin default paths.
func ParseRelativePath(pathString string, public bool) (*Path, error) {
	if pathString == "" {
		return &Path{Public: public}, nil
	}

	indexes, err := parseIndexes(strings.Split(pathString, "/"))
	if err != nil {
		return nil, err
	}

	return &Path{Public: public, Indexes: indexes}, nil
}

func parseIndexes(parts []string) ([]uint32, error) {
	indexes := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := false
		switch {
		case strings.HasSuffix(part, "'"), strings.HasSuffix(part, "h"), strings.HasSuffix(part, "H"):
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid path element %q", part)
		}
		if index >= HardenedIndexStart {
			return nil, errors.Errorf("path index %d must be lower than %d", index, uint32(HardenedIndexStart))
		}

		if hardened {
			index |= HardenedIndexStart
		}
		indexes = append(indexes, uint32(index))
	}

	return indexes, nil
}

// Path derives the descendant of the key at the given path string. If the
// path uses the "M/" form the returned key is the public one.
func (extKey *ExtendedKey) Path(pathString string) (*ExtendedKey, error) {
	path, err := ParsePath(pathString)
	if err != nil {
		return nil, err
	}

	return extKey.DerivePath(path)
}

// DerivePath derives every index of the path in order, left to right. The
// first failing step aborts the whole derivation; no partial result is
// returned.
func (extKey *ExtendedKey) DerivePath(path *Path) (*ExtendedKey, error) {
	descendantExtKey := extKey
	for _, index := range path.Indexes {
		var err error
		descendantExtKey, err = descendantExtKey.Child(index)
		if err != nil {
			return nil, err
		}
	}

	if path.Public {
		return descendantExtKey.Public()
	}

	return descendantExtKey, nil
}
