package util

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModMatchesIterativeWrap(t *testing.T) {
	wrap := func(a int) int {
		for a > 11 {
			a -= 12
		}
		for a < 0 {
			a += 12
		}
		return a
	}

	for a := -100; a <= 100; a++ {
		name := fmt.Sprintf("Mod(%v, 12)", a)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, wrap(a), Mod(a, 12))
		})
	}
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}

func TestUniquePreservesOrder(t *testing.T) {
	assert.Equal(t, []int{4, 0, 7}, Unique([]int{4, 0, 4, 7, 0}))
	assert.Nil(t, Unique([]int{}))
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	rel, err := ResolvePath(dir, "nested/out.mid")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "out.mid"), rel)
	info, err := os.Stat(filepath.Join(dir, "nested"))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	abs := filepath.Join(dir, "abs.mid")
	res, err := ResolvePath("/ignored", abs)
	assert.NoError(t, err)
	assert.Equal(t, abs, res)
}
