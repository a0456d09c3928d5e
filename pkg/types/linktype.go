package types

import "github.com/arthur-debert/mklnk/pkg/errors"

// LinkType identifies one of the four link kinds mklnk can create.
type LinkType int

const (
	// LinkSoft is a directory symbolic link (a "soft link").
	LinkSoft LinkType = iota
	// LinkHard is a hard link to a file.
	LinkHard
	// LinkSymbolic is a file symbolic link.
	LinkSymbolic
	// LinkJunction is a directory junction (mount-point reparse point).
	LinkJunction
)

// Name returns the human-readable name used in console output.
func (t LinkType) Name() string {
	switch t {
	case LinkSoft:
		return "Soft Link"
	case LinkHard:
		return "Hard Link"
	case LinkSymbolic:
		return "Symbolic Link"
	case LinkJunction:
		return "Junction"
	default:
		return "Unknown"
	}
}

// ParseLinkType selects the link kind from the four mutually-exclusive
// CLI flags. Exactly one must be set; anything else is a usage error
// and must be rejected before any filesystem call is made.
func ParseLinkType(soft, hard, symbolic, junction bool) (LinkType, error) {
	count := 0
	for _, b := range []bool{soft, hard, symbolic, junction} {
		if b {
			count++
		}
	}

	switch count {
	case 0:
		return 0, errors.New(errors.ErrNoLinkType,
			"no link type specified, use --soft, --hard, --symbolic, or --junction")
	case 1:
		switch {
		case soft:
			return LinkSoft, nil
		case hard:
			return LinkHard, nil
		case symbolic:
			return LinkSymbolic, nil
		default:
			return LinkJunction, nil
		}
	default:
		return 0, errors.New(errors.ErrMultipleLinkTypes,
			"multiple link types specified, choose only one")
	}
}
