// Package rewrite loads a source file into memory and writes a patched
// version of it back out.
package rewrite

import (
	"fmt"
	"io/fs"
	"os"
)

// File is a source file held entirely in memory.
type File struct {
	Path    string
	Mode    fs.FileMode
	Content string
}

// Load reads path in full.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &File{
		Path:    path,
		Mode:    info.Mode().Perm(),
		Content: string(data),
	}, nil
}

// Save writes content to dest, or over the original file when dest is empty.
// The original file's permissions are kept. It writes even if content is
// identical to what was loaded.
func (f *File) Save(dest, content string) error {
	if dest == "" {
		dest = f.Path
	}
	mode := f.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := os.WriteFile(dest, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}
