package fixes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The corrected block must differ from the broken one only by indentation of
// the action branches and one closing brace for the else.
func TestChatBotIndentIsIndentationOnly(t *testing.T) {
	oldLines := strings.Split(ChatBotIndent.Old, "\n")
	newLines := strings.Split(ChatBotIndent.New, "\n")
	require.Len(t, newLines, len(oldLines)+1)

	const header = 4
	for i, line := range oldLines {
		if i < header {
			assert.Equal(t, line, newLines[i], "line %d", i)
			continue
		}
		assert.Equal(t, "    "+line, newLines[i], "line %d", i)
	}
	assert.Equal(t, "            }", newLines[len(newLines)-1])
}

func TestChatBotIndentDoesNotContainItself(t *testing.T) {
	assert.NotContains(t, ChatBotIndent.New, ChatBotIndent.Old)
	assert.NotEmpty(t, ChatBotIndent.Old)
	assert.NotEmpty(t, ChatBotIndent.New)
}

func TestChatBotIndentPreservesArabicText(t *testing.T) {
	const phrase = "يمكنك عرض قائمة المحققين المتخصصين والحجز معهم مباشرة"
	assert.Contains(t, ChatBotIndent.Old, phrase)
	assert.Contains(t, ChatBotIndent.New, phrase)
}

func TestDefault(t *testing.T) {
	fix := Default()
	assert.Equal(t, "chatbot-indent", fix.Name)
	assert.Equal(t, "src/components/ChatBot.jsx", fix.Target)
}
