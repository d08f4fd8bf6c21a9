// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/blockbatch/settings/internal/model"
)

// SuggestTimezones returns up to n catalogue zones closest to input.
// Zones containing the input (case-insensitive) rank first, the rest by
// edit distance against the zone name and its city part. An exact match
// yields no suggestions.
func SuggestTimezones(input string, n int) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" || n <= 0 {
		return nil
	}

	type scored struct {
		zone     string
		contains bool
		dist     int
	}
	candidates := make([]scored, 0, len(model.Timezones))
	for _, zone := range model.Timezones {
		lz := strings.ToLower(zone)
		if lz == q {
			return nil
		}
		city := lz
		if i := strings.LastIndex(lz, "/"); i >= 0 {
			city = lz[i+1:]
		}
		dist := min(levenshtein.ComputeDistance(q, lz), levenshtein.ComputeDistance(q, city))
		candidates = append(candidates, scored{zone: zone, contains: strings.Contains(lz, q), dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.contains != b.contains {
			return a.contains
		}
		return a.dist < b.dist
	})

	// ignore matches that share almost nothing with the input
	limit := max(len(q)/2, 2)
	var out []string
	for _, c := range candidates {
		if len(out) == n {
			break
		}
		if !c.contains && c.dist > limit {
			break
		}
		out = append(out, c.zone)
	}
	return out
}

// SuggestTimezones suggests zones for the current profile timezone.
func (p *Page) SuggestTimezones(n int) []string {
	return SuggestTimezones(p.profile.Timezone, n)
}
