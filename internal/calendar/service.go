// Package calendar computes bank and federal holiday calendars and moves
// dates to business days.
//
// Holiday tables are pure functions of (year, regime). A Service memoizes
// them: a table is computed once, published into the cache and never
// modified afterwards. Callers always receive copies.
package calendar

import (
	"fmt"
	"sync"

	"github.com/budgetcalc/engine/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"
)

var tableLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holiday_table_lookups_total",
		Help: "How many holiday table lookups were made, partitioned by regime and cache result.",
	},
	[]string{"regime", "result"},
)

// Collectors returns the Prometheus collectors of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{tableLookups}
}

// Only tables of years in [MinCachedYear, MaxCachedYear] are memoized.
// Tables of other years are computed on every lookup.
const (
	MinCachedYear = 1900
	MaxCachedYear = 2199
)

type tableKey struct {
	year   int
	regime Regime
}

// entry is a computed table and the observed dates of its holidays.
type entry struct {
	table []Holiday
	set   map[types.Date]string
}

// Service is the holiday calendar. It is safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	entries map[tableKey]entry

	group  singleflight.Group
	logger zerolog.Logger
}

// NewService returns an empty calendar. Tables are computed on first use.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		entries: make(map[tableKey]entry),
		logger:  logger,
	}
}

// HolidaysFor returns the holidays of the year in the regime, ascending by
// nominal date. The bank regime always has 11 entries, the federal regime
// has 12 in inauguration years and 11 otherwise.
func (s *Service) HolidaysFor(year int, regime Regime) []Holiday {
	return slices.Clone(s.table(year, regime))
}

// table returns the table of the year. The returned slice must not be modified.
func (s *Service) table(year int, regime Regime) []Holiday {
	return s.lookup(year, regime).table
}

// observed returns the observed-date lookup for the table.
func (s *Service) observed(year int, regime Regime) map[types.Date]string {
	return s.lookup(year, regime).set
}

func (s *Service) lookup(year int, regime Regime) entry {
	if year < MinCachedYear || year > MaxCachedYear {
		tableLookups.WithLabelValues(string(regime), "uncached").Inc()
		return newEntry(year, regime)
	}

	key := tableKey{year, regime}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		tableLookups.WithLabelValues(string(regime), "hit").Inc()
		return e
	}

	tableLookups.WithLabelValues(string(regime), "miss").Inc()

	// Concurrent misses for the same key share one computation
	v, _, _ := s.group.Do(fmt.Sprintf("%d/%s", year, regime), func() (interface{}, error) {
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			return e, nil
		}

		e = newEntry(year, regime)

		s.mu.Lock()
		s.entries[key] = e
		s.mu.Unlock()

		s.logger.Debug().Int("year", year).Str("regime", string(regime)).Int("holidays", len(e.table)).Msg("holiday table computed")
		return e, nil
	})

	return v.(entry)
}

func newEntry(year int, regime Regime) entry {
	table := compute(year, regime)
	set := make(map[types.Date]string, len(table))
	for _, h := range table {
		if _, ok := set[h.ObservedDate]; !ok {
			set[h.ObservedDate] = h.Name
		}
	}
	return entry{table: table, set: set}
}
