package model

// Path represents a file system path.
type Path string

// Stdin is the path that selects standard input instead of a file.
const Stdin Path = "-"

// Source describes where a set of sensor records was loaded from.
type Source struct {
	Origin  Path
	Sensors []Sensor
}

// IsStdin reports whether the records came from standard input.
func (s Source) IsStdin() bool {
	return s.Origin == "" || s.Origin == Stdin
}
