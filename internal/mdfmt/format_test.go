package mdfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTagsUnlabeledFence(t *testing.T) {
	input := "# Title\n\n```\nprint(\"hi\")\n```\n"
	want := "# Title\n\n```python\nprint(\"hi\")\n```\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatLeavesTaggedFenceAlone(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain tag", "```go\nx := 1\n```\n"},
		{"wrong-looking tag is still kept", "```ruby\nprint(\"hi\")\n```\n"},
		{"tag with metadata", "```python file=main.py\nimport os\n```\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, Format(tt.input))
		})
	}
}

func TestFormatWhitespaceOnlyInfoIsTagged(t *testing.T) {
	input := "```   \nSELECT 1 FROM t\n```\n"
	want := "```sql\nSELECT 1 FROM t\n```\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatKeepsBodyBytes(t *testing.T) {
	body := "weird   spacing\n\ttabs\ttoo\n trailing \n"
	input := "```\n" + body + "```\n"

	got := Format(input)
	assert.Equal(t, "```text\n"+body+"```\n", got)
}

func TestFormatIndentedFence(t *testing.T) {
	input := "  ```\n  import os\n  ```\n"
	want := "  ```python\n  import os\n  ```\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatClosingIndentMustMatch(t *testing.T) {
	// The closing line is indented differently from the opener, so no
	// well-formed fence exists and nothing is tagged.
	input := " ```\ncode\n```x\n"

	assert.Equal(t, input, Format(input))
}

func TestFormatUnclosedFence(t *testing.T) {
	input := "```\nnever closed\n"

	assert.Equal(t, input, Format(input))
}

func TestFormatCollapsesBlankLines(t *testing.T) {
	input := "para one\n\n\n\n\n\npara two\n"
	want := "para one\n\npara two\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatCollapsesBlankLinesInsideFences(t *testing.T) {
	// Collapsing applies to the whole document, fence bodies included.
	input := "```go\na := 1\n\n\n\nb := 2\n```\n"
	want := "```go\na := 1\n\nb := 2\n```\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "hello\n", Format("hello\n\n\n"))
	assert.Equal(t, "hello\n", Format("hello   \t"))
	assert.Equal(t, "\n", Format(""))
}

func TestFormatMultipleFences(t *testing.T) {
	input := "```\nimport sys\n```\n\ntext\n\n```\n[1, 2]\n```\n"
	want := "```python\nimport sys\n```\n\ntext\n\n```json\n[1, 2]\n```\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatKeepsSurroundingText(t *testing.T) {
	// Prose before, between and after fences must survive untouched,
	// whether the fence gets rewritten or already carries a tag.
	input := "intro paragraph\n\n```\nimport os\n```\n\nmiddle prose\n\n```go\nx := 1\n```\n\nclosing prose\n"
	want := "intro paragraph\n\n```python\nimport os\n```\n\nmiddle prose\n\n```go\nx := 1\n```\n\nclosing prose\n"

	assert.Equal(t, want, Format(input))
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"# Doc\n\n```\nprint(\"hi\")\n```\n\n\n\nmore\n",
		"```js\nlet x\n```\n",
		"a\n\n\n\nb\n",
		"  ```\n  SELECT 1\n  ```\ntail\n",
		"",
	}

	for _, input := range inputs {
		once := Format(input)
		assert.Equal(t, once, Format(once), "input %q", input)
	}
}

func TestFormatOpenerInsideTaggedFenceBody(t *testing.T) {
	// The scan jumps past a tagged fence's body, so fence-looking lines
	// inside it are not treated as openers.
	input := "````markdown\n```\nnot a real fence\n```\n````\n"

	assert.Equal(t, input, Format(input))
}
