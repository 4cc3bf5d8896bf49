// Package search translates raw, untrusted query parameters into the
// normalized filter criteria applied to the gifts collection.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pagination defaults when parameters are absent or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Criteria is the validated query derived from raw request parameters.
// Zero-valued string fields and a nil MaxAgeYears mean "not filtered".
type Criteria struct {
	Name        string
	Category    string
	Condition   string
	MaxAgeYears *int
	Page        int
	Limit       int
}

// Parse derives Criteria from raw query parameters. Invalid or absent
// fields are omitted from the effective query rather than causing failure.
func Parse(q url.Values) Criteria {
	c := Criteria{
		Name:      strings.TrimSpace(q.Get("name")),
		Category:  q.Get("category"),
		Condition: q.Get("condition"),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if raw := q.Get("age_years"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			c.MaxAgeYears = &age
		}
		// non-numeric input is ignored, not an error
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		c.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		c.Limit = limit
	}

	return c
}

// Query builds the document filter for the criteria. The name filter is a
// case-insensitive substring match; category and condition are exact.
func (c Criteria) Query() bson.M {
	query := bson.M{}

	if c.Name != "" {
		query["name"] = primitive.Regex{Pattern: c.Name, Options: "i"}
	}
	if c.Category != "" {
		query["category"] = c.Category
	}
	if c.Condition != "" {
		query["condition"] = c.Condition
	}
	if c.MaxAgeYears != nil {
		query["age_years"] = bson.M{"$lte": *c.MaxAgeYears}
	}

	return query
}

// Skip returns the number of documents to skip for the requested page.
func (c Criteria) Skip() int64 {
	return int64(c.Page-1) * int64(c.Limit)
}
