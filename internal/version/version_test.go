package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	commit := GitCommit
	t.Cleanup(func() { GitCommit = commit })

	GitCommit = "unknown"
	assert.Equal(t, "gocombo v"+Version, String())

	GitCommit = "abc1234"
	assert.Equal(t, "gocombo v"+Version+" (abc1234)", String())
}
