package catalog

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func slugs(courses []Course) []string {
	return lo.Map(courses, func(c Course, _ int) string { return c.Slug })
}

func TestLoad_EmbeddedData(t *testing.T) {
	c := mustLoad(t)
	assert.Len(t, c.Categories(), 7)
	assert.Len(t, c.All(), 52)
}

func TestLoad_EveryCourseHasDetails(t *testing.T) {
	c := mustLoad(t)
	for _, course := range c.All() {
		assert.NotEmpty(t, course.FullTitle, course.Slug)
		assert.NotEmpty(t, course.Description, course.Slug)
		if assert.NotNil(t, course.Details, course.Slug) {
			assert.NotEmpty(t, course.Details.Duration, course.Slug)
		}
	}
}

func TestLoad_PunctuatedCurriculumItems(t *testing.T) {
	c := mustLoad(t)
	course, ok := c.FindBySlug("pmp-project-management-professional")
	require.True(t, ok)
	require.NotEmpty(t, course.Details.Curriculum)

	modules := lo.FlatMap(course.Details.Curriculum, func(row CurriculumRow, _ int) []string { return row.Modules })
	assert.Contains(t, modules, "What is PMP certification?")
}

func TestFindBySlug_FullCatalog(t *testing.T) {
	c := mustLoad(t)
	for _, slug := range []string{
		"ethical-hacking", "solidworks", "sap-mm", "hindi", "clinical-research",
		"lumion-rendering", "mobile-app-development", "financial-modeling",
		"supply-chain-management", "renewable-energy-systems", "emergency-medical-technician",
	} {
		_, ok := c.FindBySlug(slug)
		assert.True(t, ok, slug)
	}
}

func TestFindBySlug(t *testing.T) {
	c := mustLoad(t)

	course, ok := c.FindBySlug("autocad")
	require.True(t, ok)
	assert.Equal(t, "AutoCAD", course.Name)
	require.NotNil(t, course.Details)
	assert.Equal(t, "4 weeks", course.Details.Duration)

	_, ok = c.FindBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestAll_CatalogOrder(t *testing.T) {
	c := mustLoad(t)
	all := slugs(c.All())
	assert.Equal(t, "python-programming", all[0])
	assert.Equal(t, len(all), len(lo.Uniq(all)))
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := mustLoad(t)
	all := c.All()
	all[0].Name = "changed"

	course, _ := c.FindBySlug(all[0].Slug)
	assert.NotEqual(t, "changed", course.Name)
}

func TestFeatured_AllPresentInOrder(t *testing.T) {
	c := mustLoad(t)
	assert.Equal(t, featuredSlugs, slugs(c.Featured()))
}

func TestFeatured_SkipsMissing(t *testing.T) {
	c, err := Parse([]byte(`
categories:
  - name: Only
    slug: only
    groups:
      - name: G
        slug: g
        courses:
          - {name: AutoCAD, slug: autocad}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"autocad"}, slugs(c.Featured()))
}

func TestParse_DuplicateSlug(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: A
    slug: a
    groups:
      - name: G
        slug: g
        courses:
          - {name: One, slug: same}
          - {name: Two, slug: same}
`))
	assert.ErrorContains(t, err, `duplicate course slug "same"`)
}

func TestParse_MissingSlug(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: A
    slug: a
    groups:
      - name: G
        slug: g
        courses:
          - {name: Nameless}
`))
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	c := mustLoad(t)

	tests := []struct {
		name     string
		query    string
		category string
		contains string
		excludes string
	}{
		{name: "by name, any case", query: "autocad", contains: "autocad"},
		{name: "by tag", query: "tensorflow", contains: "artificial-intelligence"},
		{name: "by description", query: "ICD-10", contains: "medical-coding"},
		{name: "category filter", category: "healthcare-life-sciences", contains: "medical-coding", excludes: "autocad"},
		{name: "query and category", query: "python", category: "business-management", excludes: "python-programming"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugs(c.Search(tt.query, tt.category))
			if tt.contains != "" {
				assert.Contains(t, got, tt.contains)
			}
			if tt.excludes != "" {
				assert.NotContains(t, got, tt.excludes)
			}
		})
	}
}

func TestSearch_EmptyReturnsAll(t *testing.T) {
	c := mustLoad(t)
	assert.Len(t, c.Search("  ", ""), len(c.All()))
}

func TestSearch_NoMatch(t *testing.T) {
	c := mustLoad(t)
	assert.Empty(t, c.Search("underwater basket weaving", ""))
}

func TestCategoryOf(t *testing.T) {
	c := mustLoad(t)

	cat, ok := c.CategoryOf("leed-ga-leed-ap")
	require.True(t, ok)
	assert.Equal(t, "green-building-sustainability", cat.Slug)

	_, ok = c.CategoryOf("nope")
	assert.False(t, ok)
}
