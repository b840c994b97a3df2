// Package query turns the loosely-structured listing parameters (search,
// category, city, sort, page, limit) into Mongo predicates, sort documents
// and skip/limit pairs.
package query

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultLimit is the page size used by the listing endpoints unless the
// caller asks for something else.
const DefaultLimit = 8

// Filter holds the optional narrowing parameters of a review listing. The
// zero value matches everything.
type Filter struct {
	Search   string
	Category string
	City     string

	// NameOnly restricts free-text matching to foodName. The plain listing
	// endpoint searches food names only; explore also matches restaurants.
	NameOnly bool
}

// Predicate builds the Mongo filter document for f. Absent fields impose no
// constraint, and the special value "All" for category or city means
// unfiltered. Search and category matching is case-insensitive; city is an
// exact, case-sensitive match. User input is quoted so it matches literally.
func (f Filter) Predicate() bson.M {
	q := bson.M{}

	if f.Search != "" {
		contains := bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
		if f.NameOnly {
			q["foodName"] = contains
		} else {
			q["$or"] = bson.A{
				bson.M{"foodName": contains},
				bson.M{"restaurant": contains},
			}
		}
	}

	if f.Category != "" && f.Category != "All" {
		q["category"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(f.Category) + "$",
			"$options": "i",
		}
	}

	if f.City != "" && f.City != "All" {
		q["city"] = f.City
	}

	return q
}

// Sort maps a sort keyword to a Mongo sort document. "rating" orders by
// rating descending; everything else, including the empty string, falls back
// to newest-first by creation time.
func Sort(key string) bson.D {
	if key == "rating" {
		return bson.D{{Key: "rating", Value: -1}}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// ParsePage interprets raw page/limit query values. Missing or malformed
// values fall back to page 1 and fallbackLimit, as do zero and negative
// numbers, so the skip handed to storage is never negative.
func ParsePage(pageStr, limitStr string, fallbackLimit int) Page {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = fallbackLimit
	}
	return Page{Number: page, Limit: limit}
}

// Skip is the number of records to omit before taking Limit records.
func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Limit)
}

// TotalPages is ceil(total / limit).
func (p Page) TotalPages(total int64) int64 {
	if p.Limit < 1 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}
