package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPredicateEmptyFilterMatchesAll(t *testing.T) {
	got := Filter{}.Predicate()
	if len(got) != 0 {
		t.Fatalf("empty filter should produce an empty predicate, got %v", got)
	}
}

func TestPredicateAllEqualsOmitted(t *testing.T) {
	// "All" for category or city must be equivalent to omitting the filter.
	with := Filter{Category: "All", City: "All"}.Predicate()
	without := Filter{}.Predicate()
	if !reflect.DeepEqual(with, without) {
		t.Errorf("All-filter predicate %v != omitted-filter predicate %v", with, without)
	}
}

func TestPredicateSearchNameOnly(t *testing.T) {
	q := Filter{Search: "biryani", NameOnly: true}.Predicate()
	want := bson.M{"foodName": bson.M{"$regex": "biryani", "$options": "i"}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestPredicateSearchExploreMatchesNameOrRestaurant(t *testing.T) {
	q := Filter{Search: "kacchi"}.Predicate()
	or, ok := q["$or"].(bson.A)
	if !ok {
		t.Fatalf("explore search should build an $or predicate, got %v", q)
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 $or branches, got %d", len(or))
	}
	contains := bson.M{"$regex": "kacchi", "$options": "i"}
	if !reflect.DeepEqual(or[0], bson.M{"foodName": contains}) {
		t.Errorf("first branch = %v", or[0])
	}
	if !reflect.DeepEqual(or[1], bson.M{"restaurant": contains}) {
		t.Errorf("second branch = %v", or[1])
	}
}

func TestPredicateCategoryAnchoredCaseInsensitive(t *testing.T) {
	q := Filter{Category: "Dessert"}.Predicate()
	want := bson.M{"category": bson.M{"$regex": "^Dessert$", "$options": "i"}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestPredicateCityExactMatch(t *testing.T) {
	q := Filter{City: "Dhaka"}.Predicate()
	if got := q["city"]; got != "Dhaka" {
		t.Errorf("city should be an exact case-sensitive match, got %v", got)
	}
}

func TestPredicateQuotesRegexMetacharacters(t *testing.T) {
	q := Filter{Search: "fish & chips (large)", NameOnly: true}.Predicate()
	re := q["foodName"].(bson.M)["$regex"].(string)
	if re != `fish & chips \(large\)` {
		t.Errorf("search input must be regex-quoted, got %q", re)
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  string
		want bson.D
	}{
		{"rating", bson.D{{Key: "rating", Value: -1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"", bson.D{{Key: "createdAt", Value: -1}}},
		{"alphabetical", bson.D{{Key: "createdAt", Value: -1}}},
	}
	for _, tt := range tests {
		if got := Sort(tt.key); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Sort(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    string
		fallback       int
		wantNum, wantL int
	}{
		{"defaults", "", "", 8, 1, 8},
		{"explicit", "3", "5", 8, 3, 5},
		{"zero page clamped", "0", "8", 8, 1, 8},
		{"negative page clamped", "-2", "8", 8, 1, 8},
		{"garbage", "two", "many", 6, 1, 6},
		{"negative limit falls back", "2", "-1", 8, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePage(tt.page, tt.limit, tt.fallback)
			if p.Number != tt.wantNum || p.Limit != tt.wantL {
				t.Errorf("ParsePage(%q, %q, %d) = %+v, want page %d limit %d",
					tt.page, tt.limit, tt.fallback, p, tt.wantNum, tt.wantL)
			}
			if p.Skip() < 0 {
				t.Errorf("skip must never be negative, got %d", p.Skip())
			}
		})
	}
}

func TestPaginationScenario(t *testing.T) {
	// page=2, limit=8, totalMatches=10 → skip=8, totalPages=2.
	p := ParsePage("2", "8", DefaultLimit)
	if got := p.Skip(); got != 8 {
		t.Errorf("skip = %d, want 8", got)
	}
	if got := p.TotalPages(10); got != 2 {
		t.Errorf("totalPages = %d, want 2", got)
	}
}

func TestTotalPagesCeil(t *testing.T) {
	tests := []struct {
		limit int
		total int64
		want  int64
	}{
		{8, 0, 0},
		{8, 1, 1},
		{8, 8, 1},
		{8, 9, 2},
		{5, 25, 5},
		{6, 25, 5},
	}
	for _, tt := range tests {
		p := Page{Number: 1, Limit: tt.limit}
		if got := p.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) with limit %d = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
