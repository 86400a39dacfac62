package combine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSoundpackRootMissing is returned for a soundpack whose root directory
// does not exist. The soundpack is skipped.
var ErrSoundpackRootMissing = errors.New("soundpack not found")

// MissingFilesError is returned by RunCurated when listed files are absent.
type MissingFilesError struct {
	Files []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("%d file(s) not found: %s", len(e.Files), strings.Join(e.Files, ", "))
}
