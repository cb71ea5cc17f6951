package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/tunesmith/util"
)

// ForLength names a generated piece by its note count. Requests for the same count
// share a file; the last writer wins.
func ForLength(length int) string {
	return fmt.Sprintf("ai_music_%dnotes.mid", length)
}

// IsServable reports whether name is a plain midi filename with no directory parts,
// so it cannot escape the output directory.
func IsServable(name string) bool {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return util.IsMidiPath(name)
}
