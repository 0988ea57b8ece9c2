package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	v, commit, date := Info()
	assert.Equal(t, Version, v)
	assert.Equal(t, GitCommit, commit)
	assert.Equal(t, BuildDate, date)
}

func TestString(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	Version = "1.2.3"
	GitCommit = "abc1234"

	s := String()
	assert.Contains(t, s, "sortbench 1.2.3")
	assert.Contains(t, s, "commit abc1234")
	assert.Contains(t, s, runtime.Version())
}
