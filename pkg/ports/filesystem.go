package ports

// FileSystem is the file access used for photos, caption files, rendered
// PNGs and debug output.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces path with data, creating parent directories.
	WriteFile(path string, data []byte) error

	MkdirAll(path string) error
}
