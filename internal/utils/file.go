package utils

import "os"

// Truncates a file at a given offset
func TruncateAt(f *os.File, offset int64) error {
	if err := f.Truncate(offset); err != nil {
		return err
	}
	return f.Sync()
}

// Indicates if the given path exists or not (works for both files and directories)
func PathExists(filepath string) bool {
	_, err := os.Stat(filepath)
	return err == nil
}

// CreateEmptyFile creates filepath with no content. It fails if the file
// already exists.
func CreateEmptyFile(filepath string) error {
	f, err := os.OpenFile(filepath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// OverwriteFile replaces the contents of an existing file with data. The file
// is truncated first and then written in place, so an interrupted write can
// leave it partially written. It never creates the file.
func OverwriteFile(filepath string, data []byte) error {
	f, err := os.OpenFile(filepath, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := TruncateAt(f, 0); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
