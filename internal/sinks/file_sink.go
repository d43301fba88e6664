package sinks

import "os"

// FileSink overwrites a single file with the latest access code on every
// successful read (spec.md §4.7): no header, no newline, just the literal
// digit string.
type FileSink struct {
	path string
}

// NewFileSink returns a sink that truncates and rewrites path on every
// Write.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write overwrites the sink's file with accessCode.
func (s *FileSink) Write(accessCode string) error {
	return os.WriteFile(s.path, []byte(accessCode), 0o644)
}
