package filename

import "strings"

// Parts is a file name split around its last dot. Extension keeps the leading
// dot so Name+Extension reassembles the original input.
type Parts struct {
	Name      string
	Extension string
}

// Decompose splits a file name into base name and extension. A name with no
// dot has an empty extension; a dotfile like ".gitignore" has an empty name.
func Decompose(name string) Parts {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return Parts{Name: name}
	}

	return Parts{
		Name:      name[:idx],
		Extension: name[idx:],
	}
}
