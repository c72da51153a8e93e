package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ledger/internal/testutil"
)

func TestGuideCmd_Raw(t *testing.T) {
	out, err := testutil.ExecuteCommand(t, GuideCmd(), "--raw")
	require.NoError(t, err)
	assert.Equal(t, guideContent, out)
}

func TestGuideCmd_Rendered(t *testing.T) {
	out, err := testutil.ExecuteCommand(t, GuideCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "ledger student")
	assert.NotEqual(t, guideContent, out)
}

func TestRender(t *testing.T) {
	out := Render("# Title\n\nSome text.", 40, false)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some text.")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestGuideMentionsEveryVerb(t *testing.T) {
	for _, verb := range []string{"add", "list", "update", "delete"} {
		assert.Contains(t, guideContent, verb)
	}
}
