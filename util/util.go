package util

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is the euclidean remainder: the result always lies in [0, n) for n > 0,
// including when a is negative.
func Mod[A constraints.Signed](a A, n A) A {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Unique keeps the first occurrence of every value, preserving order.
func Unique[A comparable](vals []A) []A {
	seen := make(map[A]bool, len(vals))
	var res []A
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}

// ResolvePath joins relative paths onto dir and makes sure the parent
// directory exists.
func ResolvePath(dir string, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return "", err
	}
	return path, nil
}
