package patch

import "fmt"

type ChangeKind int

const (
	Deleted ChangeKind = iota
	Copied
)

func (k ChangeKind) String() string {
	switch k {
	case Deleted:
		return "delete"
	case Copied:
		return "copy"
	}
	return "<unknown change>"
}

type Change struct {
	Kind ChangeKind
	Name string
	// From and Replaced are set for copies.
	From     string
	Replaced bool
}

func (c Change) String() string {
	switch c.Kind {
	case Copied:
		if c.Replaced {
			return fmt.Sprintf("copy %s <- %s (replaced)", c.Name, c.From)
		}
		return fmt.Sprintf("copy %s <- %s (new)", c.Name, c.From)
	default:
		return fmt.Sprintf("%s %s", c.Kind, c.Name)
	}
}
