package orgchart

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketpulse/internal/sheet"
)

func renderDoc(t *testing.T, chart *Chart) *goquery.Document {
	t.Helper()

	data, err := Render(chart)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestRender_OneBoxPerPerson(t *testing.T) {
	chart := &Chart{
		Company:  "Acme",
		Location: "London",
		Roots: []*Node{
			{
				Record: sheet.PersonRecord{Name: "Ada", Designation: "CTO", Category: "Decision Maker"},
				Children: []*Node{
					{Record: sheet.PersonRecord{Name: "Bob", Designation: "Engineer"}},
				},
			},
		},
	}

	doc := renderDoc(t, chart)
	assert.Equal(t, 2, doc.Find(".person").Length())
	assert.Equal(t, "Ada", doc.Find(".person .name").First().Text())
	assert.Equal(t, 1, doc.Find(".person .category").Length())
	assert.Contains(t, doc.Find("h1").Text(), "Acme")
	assert.Equal(t, "London", doc.Find(".location").Text())
}

func TestRender_NestingFollowsTree(t *testing.T) {
	chart := &Chart{
		Company: "Acme",
		Roots: []*Node{
			{
				Record: sheet.PersonRecord{Name: "Ada"},
				Children: []*Node{
					{Record: sheet.PersonRecord{Name: "Bob"}},
					{Record: sheet.PersonRecord{Name: "Cyd"}},
				},
			},
		},
	}

	doc := renderDoc(t, chart)
	assert.Equal(t, 2, doc.Find("ul.tree > li > ul > li").Length())
}

func TestRender_SelfContained(t *testing.T) {
	chart := &Chart{
		Company: "Acme",
		Roots:   []*Node{{Record: sheet.PersonRecord{Name: "Ada"}}},
	}

	doc := renderDoc(t, chart)
	assert.Zero(t, doc.Find("link").Length())
	assert.Zero(t, doc.Find("script[src]").Length())
	assert.Equal(t, 1, doc.Find("style").Length())
	assert.Equal(t, 1, doc.Find("script").Length())
}

func TestRender_EscapesNames(t *testing.T) {
	chart := &Chart{
		Company: "Acme",
		Roots:   []*Node{{Record: sheet.PersonRecord{Name: "<b>Ada</b>"}}},
	}

	data, err := Render(chart)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<b>Ada</b>")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "<b>Ada</b>", doc.Find(".person .name").Text())
}
