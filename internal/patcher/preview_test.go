package patcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedSingleHunk(t *testing.T) {
	got := Unified("src/x.jsx", "a\nb\nc\n", "a\nB\nc\n")

	want := "--- a/src/x.jsx\n" +
		"+++ b/src/x.jsx\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+B\n" +
		" c\n"
	assert.Equal(t, want, got)
}

func TestUnifiedEqualContent(t *testing.T) {
	assert.Empty(t, Unified("x", "same\n", "same\n"))
	assert.Empty(t, Preview("x", "same\n", "same\n"))
}

func TestUnifiedSplitsDistantChanges(t *testing.T) {
	var before, after []string
	for i := 1; i <= 20; i++ {
		line := fmt.Sprintf("line %d", i)
		before = append(before, line)
		if i == 2 || i == 18 {
			line += " changed"
		}
		after = append(after, line)
	}

	got := Unified("f", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")

	assert.Equal(t, 2, strings.Count(got, "@@ -"))
	assert.Contains(t, got, "@@ -1,5 +1,5 @@\n")
	assert.Contains(t, got, "@@ -15,6 +15,6 @@\n")
}

func TestUnifiedPureInsertion(t *testing.T) {
	got := Unified("f", "a\n", "a\nb\n")
	assert.Contains(t, got, "@@ -1,1 +1,2 @@\n a\n+b\n")
}

func TestPreviewKeepsDiffText(t *testing.T) {
	got := Preview("f", "a\nb\n", "a\nc\n")
	assert.Contains(t, got, "-b")
	assert.Contains(t, got, "+c")
	assert.Contains(t, got, "@@")
}
