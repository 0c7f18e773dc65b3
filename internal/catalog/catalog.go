// Package catalog holds the institute's course catalog. The data is
// compiled into the binary from courses.yaml and never changes at runtime.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed courses.yaml
var coursesYAML []byte

// featuredSlugs は トップページに表示するコースの順序
var featuredSlugs = []string{
	"pmp-project-management-professional",
	"cfm-certified-facility-manager",
	"leed-ga-leed-ap",
	"artificial-intelligence",
	"bim-building-information-modeling",
	"autocad",
	"medical-coding",
	"excel-powerpoint",
	"spoken-english",
	"data-science",
}

type Category struct {
	Name   string  `yaml:"name" json:"name"`
	Slug   string  `yaml:"slug" json:"slug"`
	Icon   string  `yaml:"icon" json:"icon,omitempty"`
	Groups []Group `yaml:"groups" json:"groups"`
}

type Group struct {
	Name    string   `yaml:"name" json:"name"`
	Slug    string   `yaml:"slug" json:"slug"`
	Courses []Course `yaml:"courses" json:"courses"`
}

type Course struct {
	Name        string   `yaml:"name" json:"name"`
	Slug        string   `yaml:"slug" json:"slug"`
	FullTitle   string   `yaml:"full_title" json:"full_title"`
	Description string   `yaml:"description" json:"description"`
	Details     *Details `yaml:"details" json:"details,omitempty"`
}

// Title returns the full title, falling back to the short name.
func (c Course) Title() string {
	if c.FullTitle != "" {
		return c.FullTitle
	}
	return c.Name
}

type Details struct {
	Subtitle         string          `yaml:"subtitle" json:"subtitle,omitempty"`
	Overview         string          `yaml:"overview" json:"overview,omitempty"`
	WhatYouWillLearn []string        `yaml:"what_you_will_learn" json:"what_you_will_learn,omitempty"`
	Requirements     []string        `yaml:"requirements" json:"requirements,omitempty"`
	Curriculum       []CurriculumRow `yaml:"curriculum" json:"curriculum,omitempty"`
	FAQ              []FAQ           `yaml:"faq" json:"faq,omitempty"`
	Price            string          `yaml:"price" json:"price,omitempty"`
	Duration         string          `yaml:"duration" json:"duration,omitempty"`
	Level            string          `yaml:"level" json:"level,omitempty"`
	Tags             []string        `yaml:"tags" json:"tags,omitempty"`
	Certification    string          `yaml:"certification" json:"certification,omitempty"`
	Includes         []string        `yaml:"includes" json:"includes,omitempty"`
	SoftwareCovered  []string        `yaml:"software_covered" json:"software_covered,omitempty"`
}

type CurriculumRow struct {
	Title   string   `yaml:"title" json:"title"`
	Modules []string `yaml:"modules" json:"modules"`
}

type FAQ struct {
	Question string `yaml:"q" json:"q"`
	Answer   string `yaml:"a" json:"a"`
}

// Catalog is an immutable, indexed view over the course data.
type Catalog struct {
	categories []Category
	courses    []Course
	bySlug     map[string]int
	categoryOf map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(coursesYAML)
}

// Parse builds a Catalog from YAML. Course slugs must be unique.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		categories: doc.Categories,
		bySlug:     make(map[string]int),
		categoryOf: make(map[string]int),
	}
	for ci, cat := range doc.Categories {
		for _, g := range cat.Groups {
			for _, course := range g.Courses {
				if course.Slug == "" {
					return nil, fmt.Errorf("course %q in %s has no slug", course.Name, cat.Slug)
				}
				if _, dup := c.bySlug[course.Slug]; dup {
					return nil, fmt.Errorf("duplicate course slug %q", course.Slug)
				}
				c.bySlug[course.Slug] = len(c.courses)
				c.categoryOf[course.Slug] = ci
				c.courses = append(c.courses, course)
			}
		}
	}
	return c, nil
}

// FindBySlug returns the course with the given slug.
func (c *Catalog) FindBySlug(slug string) (Course, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// All returns every course in catalog order.
func (c *Catalog) All() []Course {
	return append([]Course(nil), c.courses...)
}

func (c *Catalog) Categories() []Category {
	return c.categories
}

// CategoryOf returns the category that lists the course.
func (c *Catalog) CategoryOf(slug string) (Category, bool) {
	i, ok := c.categoryOf[slug]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Featured returns the home page courses. Slugs missing from the data are skipped.
func (c *Catalog) Featured() []Course {
	return lo.FilterMap(featuredSlugs, func(slug string, _ int) (Course, bool) {
		return c.FindBySlug(slug)
	})
}

// Search filters courses by a case-insensitive query over name, full title,
// description and tags, optionally restricted to one category slug.
// Empty query and category return every course.
func (c *Catalog) Search(query, category string) []Course {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(c.courses, func(course Course, _ int) bool {
		if category != "" {
			cat, _ := c.CategoryOf(course.Slug)
			if cat.Slug != category {
				return false
			}
		}
		if q == "" {
			return true
		}
		return lo.SomeBy(searchFields(course), func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		})
	})
}

func searchFields(c Course) []string {
	fields := []string{c.Name, c.FullTitle, c.Description}
	if c.Details != nil {
		fields = append(fields, c.Details.Tags...)
	}
	return fields
}
