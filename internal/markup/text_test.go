package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphs(t *testing.T) {
	content := `<h2>Intro</h2>
<p>First <strong>bold</strong> paragraph.</p>
<p>   </p>
<div><p>Second<br>line.</p></div>
<p>Third.</p>`

	assert.Equal(t, []string{"First bold paragraph.", "Second line."}, Paragraphs(content, 2))
	assert.Len(t, Paragraphs(content, 5), 3)
}

func TestParagraphs_NoParagraphs(t *testing.T) {
	assert.Nil(t, Paragraphs("Plain text only", 2))
	assert.Nil(t, Paragraphs("", 2))
	assert.Nil(t, Paragraphs("<p>x</p>", 0))
}

func TestParagraphs_SkipsScript(t *testing.T) {
	assert.Equal(t, []string{"Visible"}, Paragraphs(`<p>Visible<script>var x = 1;</script></p>`, 2))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount())
	assert.Equal(t, 5, WordCount("one two  three", "", " four\nfive "))
}
