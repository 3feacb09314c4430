package files

import "io/fs"

// Entry is a filesystem entry discovered during traversal. Dir is the path
// of the entry's parent directory relative to the traversal root and is the
// key the entry is grouped under.
type Entry struct {
	fs.DirEntry
	Path string
	Dir  string
}

// FileItem contains the normalized information about one entry for
// rendering in templates.
type FileItem struct {
	Path     string
	Name     string
	Size     string
	Modified string
	Mime     string
	IsDir    bool
	Icon     string
}
