package ports

// FileListWriter materializes a path list to a file, one path per line.
// Write reports whether the file content actually changed; identical content
// is not rewritten.
//
//go:generate mockgen -source=filelist.go -destination=mocks/mock_filelist.go -package=mocks
type FileListWriter interface {
	Write(path string, entries []string) (changed bool, err error)
}
