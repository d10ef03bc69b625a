package store

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/copperline/budgeteer/internal/model"
)

// The grouped aggregations are computed in application code over rows fetched
// by owner+range, so the Firestore store and the memory store share one set of
// math and cannot drift apart numerically.

var titleCaser = cases.Title(language.English)

// normalizeTitle canonicalizes an expense title for grouping: surrounding
// whitespace stripped, inner runs collapsed, then title-cased so "coffee " and
// "Coffee" land in the same bucket.
func normalizeTitle(title string) string {
	return titleCaser.String(strings.ToLower(strings.Join(strings.Fields(title), " ")))
}

// canonicalCategory coalesces a missing or blank category.
func canonicalCategory(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		return model.UncategorizedLabel
	}
	return c
}

func sumAmounts(expenses []*model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// groupByDay sums per 1-based day-of-month (UTC). Days with no expenses do
// not appear.
func groupByDay(expenses []*model.Expense) []model.DayTotal {
	byDay := make(map[int]float64)
	for _, e := range expenses {
		byDay[e.Date.UTC().Day()] += e.Amount
	}

	totals := make([]model.DayTotal, 0, len(byDay))
	for day, amount := range byDay {
		totals = append(totals, model.DayTotal{Day: day, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day < totals[j].Day
	})
	return totals
}

// groupByCategory sums and counts per canonical category, amount descending.
// Equal amounts tie-break on category name so the order is deterministic.
func groupByCategory(expenses []*model.Expense) []model.CategoryTotal {
	amounts := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range expenses {
		cat := canonicalCategory(e.Category)
		amounts[cat] += e.Amount
		counts[cat]++
	}

	totals := make([]model.CategoryTotal, 0, len(amounts))
	for cat, amount := range amounts {
		totals = append(totals, model.CategoryTotal{Category: cat, Amount: amount, Count: counts[cat]})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// groupByTitle sums per normalized title, amount descending, truncated to
// limit. A limit <= 0 means no truncation.
func groupByTitle(expenses []*model.Expense, limit int) []model.TitleTotal {
	byTitle := make(map[string]float64)
	for _, e := range expenses {
		byTitle[normalizeTitle(e.Title)] += e.Amount
	}

	totals := make([]model.TitleTotal, 0, len(byTitle))
	for title, amount := range byTitle {
		totals = append(totals, model.TitleTotal{Title: title, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Title < totals[j].Title
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// groupByISOWeek sums per ISO-8601 week, chronologically ascending. The ISO
// year is kept for sorting because the last days of December belong to week 1
// of the following ISO year and must not sort ahead of weeks 49-52.
func groupByISOWeek(expenses []*model.Expense) []model.WeekTotal {
	type isoWeek struct {
		year int
		week int
	}
	byWeek := make(map[isoWeek]float64)
	for _, e := range expenses {
		year, week := e.Date.UTC().ISOWeek()
		byWeek[isoWeek{year: year, week: week}] += e.Amount
	}

	keys := make([]isoWeek, 0, len(byWeek))
	for key := range byWeek {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	totals := make([]model.WeekTotal, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, model.WeekTotal{Week: key.week, Amount: byWeek[key]})
	}
	return totals
}
