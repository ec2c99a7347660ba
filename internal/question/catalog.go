package question

import (
	"sort"
	"strconv"
)

// Catalog maps chapter numbers to chapter names.
type Catalog map[string]string

// DefaultCatalog returns the DMBOK knowledge areas keyed by chapter number.
func DefaultCatalog() Catalog {
	return Catalog{
		"1":  "Data Management",
		"2":  "Data Governance",
		"3":  "Data Handling Ethics",
		"4":  "Data Quality",
		"5":  "Data Management Organization and Role Expectation",
		"6":  "Reference & Master Data",
		"7":  "Big Data and Data Science",
		"8":  "Data Security",
		"9":  "Data Architecture",
		"10": "Data Integration & Interoperability",
		"11": "Data Modeling and Design",
		"12": "Metadata",
		"13": "Data Warehousing and Business Intelligence",
		"14": "Data Storage and Operations",
		"15": "Document and Content Management",
	}
}

// Choice is one entry of the chapter picker.
type Choice struct {
	Key     string
	Chapter string
	Count   int
}

// Label renders the picker text for a choice.
func (c Choice) Label() string {
	if c.Key == "" {
		return c.Chapter
	}
	return c.Key + " - " + c.Chapter
}

// Choices lists AllChapters, the catalog chapters in numeric order, and any
// chapter found in the bank that the catalog does not name.
func Choices(bank *Bank, catalog Catalog) []Choice {
	choices := []Choice{{Chapter: AllChapters, Count: bank.Count(AllChapters)}}
	named := map[string]struct{}{}
	for _, key := range catalog.sortedKeys() {
		name := catalog[key]
		named[name] = struct{}{}
		choices = append(choices, Choice{Key: key, Chapter: name, Count: bank.Count(name)})
	}
	for _, chapter := range bank.Chapters() {
		if _, ok := named[chapter]; ok {
			continue
		}
		choices = append(choices, Choice{Chapter: chapter, Count: bank.Count(chapter)})
	}
	return choices
}

func (c Catalog) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		left, leftErr := strconv.Atoi(keys[i])
		right, rightErr := strconv.Atoi(keys[j])
		if leftErr == nil && rightErr == nil {
			return left < right
		}
		if leftErr == nil {
			return true
		}
		if rightErr == nil {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}
