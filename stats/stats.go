// Package stats computes aggregate summaries over record collections and
// over groups produced by the query package. Every function is a pure
// computation and every result is plain serializable data.
package stats

import (
	"time"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/query"
)

// DateRange is a min/max span with nullable bounds, so "no valid date data"
// is representable as {nil, nil} rather than an ambiguous zero time.
type DateRange struct {
	Min *time.Time `json:"min"`
	Max *time.Time `json:"max"`
}

// Base summarizes one collection of records against a numeric field and a
// date field.
type Base struct {
	// Count is the number of records, including those missing the value field
	Count int `json:"count"`

	// TotalValue sums the present numeric values; absent contributes zero
	TotalValue float64 `json:"totalValue"`

	// AverageValue is TotalValue / Count, or zero for an empty collection
	AverageValue float64 `json:"averageValue"`

	// DateRange spans only the records with a present date
	DateRange DateRange `json:"dateRange"`
}

// Distribution counts records per distinct display value of one field
type Distribution map[string]int

// Catalog extends Base with named value distributions
type Catalog struct {
	Base
	Distributions map[string]Distribution `json:"distributions,omitempty"`
}

// Aggregate extends Base with data-quality counters, so callers can derive
// completeness ratios like ValidValueCount / Count.
type Aggregate struct {
	Base
	ValidValueCount int `json:"validValueCount"`
	ValidDateCount  int `json:"validDateCount"`
}

// BaseStats computes the base summary for a record collection
func BaseStats(records []*catalog.Record, valueField, dateField string) Base {
	stats := Base{Count: len(records)}

	for _, r := range records {
		if n, ok := r.GetNumber(valueField); ok {
			stats.TotalValue += n
		}
		if t, ok := r.GetDate(dateField); ok {
			extendRange(&stats.DateRange, t)
		}
	}

	if stats.Count > 0 {
		stats.AverageValue = stats.TotalValue / float64(stats.Count)
	}

	return stats
}

// GroupStats computes the base summary for one group's records
func GroupStats(g query.Group, valueField, dateField string) Base {
	return BaseStats(g.Records, valueField, dateField)
}

// CatalogStats computes the base summary plus one distribution per
// requested field. Distributions reuse the query engine's grouping, so
// list fields fan out and records missing the field count under the
// unset key.
func CatalogStats(records []*catalog.Record, valueField, dateField string, distributionFields ...string) Catalog {
	stats := Catalog{Base: BaseStats(records, valueField, dateField)}

	for _, field := range distributionFields {
		dist := make(Distribution)
		for _, g := range query.GroupBy(records, field) {
			dist[query.Flatten(g.Key)] = len(g.Records)
		}
		if stats.Distributions == nil {
			stats.Distributions = make(map[string]Distribution)
		}
		stats.Distributions[field] = dist
	}

	return stats
}

// AggregateStats computes the base summary plus counts of how many records
// carried a valid numeric value and a valid date.
func AggregateStats(records []*catalog.Record, valueField, dateField string) Aggregate {
	stats := Aggregate{Base: BaseStats(records, valueField, dateField)}

	for _, r := range records {
		if _, ok := r.GetNumber(valueField); ok {
			stats.ValidValueCount++
		}
		if _, ok := r.GetDate(dateField); ok {
			stats.ValidDateCount++
		}
	}

	return stats
}

// extendRange widens a date range to include one timestamp
func extendRange(dr *DateRange, t time.Time) {
	if dr.Min == nil || t.Before(*dr.Min) {
		min := t
		dr.Min = &min
	}
	if dr.Max == nil || t.After(*dr.Max) {
		max := t
		dr.Max = &max
	}
}
