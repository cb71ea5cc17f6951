package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func IsMidiPath(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

func EnsureDir(dir string) error {
	return errors.Wrapf(os.MkdirAll(dir, 0777), "could not create %v", dir)
}

// GatherAllMidiPaths walks path and returns every midi file in lexical order. maxNum of
// 0 means no limit. A missing directory is not an error. Unreadable entries below path
// are logged and skipped; only a failure on path itself is returned.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			if s == path {
				return err
			}
			log.WithFields(log.Fields{"path": s}).Warnf("Skipping because: %v", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	err := filepath.WalkDir(path, walk)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return res, errors.Wrapf(err, "Error walking %v", path)
	}
	return res, nil
}

// ListMidiFiles returns the sorted names of the midi files directly inside dir.
func ListMidiFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read dir %v", dir)
	}

	res := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".mid") {
			res = append(res, e.Name())
		}
	}
	slices.Sort(res)
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
