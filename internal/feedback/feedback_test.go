package feedback

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `## Overall Match

**Strong candidate**
### Strengths
* Ten years of Go
* Led a platform team

---
Consider quantifying impact.
`

func TestParse(t *testing.T) {
	blocks := Parse(sample)

	assert.Equal(t, []Block{
		{Kind: KindHeading, Text: "Overall Match"},
		{Kind: KindBold, Text: "Strong candidate"},
		{Kind: KindSubheading, Text: "Strengths"},
		{Kind: KindBullet, Text: "Ten years of Go"},
		{Kind: KindBullet, Text: "Led a platform team"},
		{Kind: KindDivider},
		{Kind: KindParagraph, Text: "Consider quantifying impact."},
	}, blocks)
}

func TestParse_LineRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Block
	}{
		{"bold", "**x**", Block{Kind: KindBold, Text: "x"}},
		{"bare markers", "**", Block{Kind: KindParagraph, Text: "**"}},
		{"empty bold", "****", Block{Kind: KindParagraph, Text: "****"}},
		{"bold inside text", "Note **this**", Block{Kind: KindParagraph, Text: "Note **this**"}},
		{"subheading", "### Gaps", Block{Kind: KindSubheading, Text: "Gaps"}},
		{"heading", "## Summary", Block{Kind: KindHeading, Text: "Summary"}},
		{"hashes without space", "##Summary", Block{Kind: KindParagraph, Text: "##Summary"}},
		{"four hashes", "#### Deep", Block{Kind: KindParagraph, Text: "#### Deep"}},
		{"bullet", "* item", Block{Kind: KindBullet, Text: "item"}},
		{"dash bullet is paragraph", "- item", Block{Kind: KindParagraph, Text: "- item"}},
		{"divider", "---", Block{Kind: KindDivider}},
		{"long divider is paragraph", "----", Block{Kind: KindParagraph, Text: "----"}},
		{"indented", "   * nested", Block{Kind: KindBullet, Text: "nested"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.line)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		})
	}
}

func TestParse_BlankLinesDropped(t *testing.T) {
	assert.Empty(t, Parse("\n   \n\t\n"))
	assert.Len(t, Parse("a\n\n\nb"), 2)
}

func TestRenderHTML(t *testing.T) {
	out := RenderHTML(Parse(sample))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Overall Match", doc.Find("h2").Text())
	assert.Equal(t, "Strengths", doc.Find("h3").Text())
	assert.Equal(t, "Strong candidate", doc.Find("strong").Text())
	assert.Equal(t, 1, doc.Find("ul").Length())
	assert.Equal(t, 2, doc.Find("ul li").Length())
	assert.Equal(t, 1, doc.Find("hr").Length())
	assert.Equal(t, "Consider quantifying impact.", doc.Find("p").Last().Text())
}

func TestRenderHTML_SeparateLists(t *testing.T) {
	out := RenderHTML(Parse("* a\n* b\ntext\n* c"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	lists := doc.Find("ul")
	require.Equal(t, 2, lists.Length())
	assert.Equal(t, 2, lists.First().Find("li").Length())
	assert.Equal(t, 1, lists.Last().Find("li").Length())
}

func TestRenderHTML_EscapesText(t *testing.T) {
	out := RenderHTML(Parse("<script>alert(1)</script>\n* a & b"))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
}

func TestRenderText(t *testing.T) {
	out := RenderText(Parse(sample))

	assert.True(t, strings.HasPrefix(out, "Overall Match\n============="))
	assert.Contains(t, out, "STRONG CANDIDATE\n")
	assert.Contains(t, out, "  • Ten years of Go\n")
	assert.Contains(t, out, strings.Repeat("─", textWidth))
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "##")
}
