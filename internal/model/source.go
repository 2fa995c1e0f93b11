package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the project root
	Hash      string
}

// Source is a Go file selected for mutation together with the project it
// belongs to.
type Source struct {
	Origin *File
	Root   Path // directory holding the nearest go.mod
}
