// Package filterstate holds the dashboard's filter state: the source
// transaction list, the criteria being edited and the last applied result
// with its filter count badge.
package filterstate

import (
	"fmt"
	"sync"
	"time"

	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"
)

// Filterer runs the filter engine. *filter.Engine satisfies it.
type Filterer interface {
	Filter(transactions []models.Transaction, c filter.Criteria) ([]models.Transaction, error)
}

// Snapshot is a consistent copy of the state at one revision.
type Snapshot struct {
	Transactions     []models.Transaction
	FilteredData     []models.Transaction
	Criteria         filter.Criteria
	HasAppliedFilter bool
	FilterCount      int
	Revision         uint64
}

// PersistedCriteria is the part of the state kept across sessions. The
// filtered result and the count are derived and recomputed on load.
type PersistedCriteria struct {
	Criteria         filter.Criteria `yaml:"criteria" json:"criteria"`
	HasAppliedFilter bool            `yaml:"has_applied_filter" json:"has_applied_filter"`
}

// State is the single source of truth for filter criteria and results. It is
// safe for concurrent use. Subscribers are notified after every change,
// outside the lock.
type State struct {
	engine Filterer
	logger logging.Logger

	mu           sync.RWMutex
	transactions []models.Transaction
	filtered     []models.Transaction
	criteria     filter.Criteria
	applied      bool
	count        int
	revision     uint64

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates an empty, unfiltered state. A nil engine filters in local
// time.
func New(engine Filterer, logger logging.Logger) *State {
	if engine == nil {
		engine = filter.NewEngine(time.Local)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &State{
		engine:   engine,
		logger:   logger.WithField(logging.FieldComponent, "filterstate"),
		criteria: filter.DefaultCriteria(),
		subs:     make(map[int]func(Snapshot)),
	}
}

// filterCount implements the badge rule: one per active category, zero when
// nothing matched.
func filterCount(c filter.Criteria, result []models.Transaction) int {
	if len(result) == 0 {
		return 0
	}
	return c.ActiveCategories()
}

// SetTransactions replaces the source list. A list equal to the stored one is
// ignored. Without an applied filter the list is mirrored into the filtered
// data; with one the stored criteria are re-run against it. If the engine
// fails nothing changes and the error is returned.
func (s *State) SetTransactions(list []models.Transaction) error {
	s.mu.Lock()
	if models.TransactionsEqual(s.transactions, list) {
		s.mu.Unlock()
		return nil
	}

	source := models.CloneTransactions(list)
	if source == nil {
		source = []models.Transaction{}
	}

	if !s.applied {
		s.transactions = source
		s.filtered = source
		s.count = 0
	} else {
		result, err := s.engine.Filter(source, s.criteria)
		if err != nil {
			s.mu.Unlock()
			s.logger.WithError(err).Warn("Failed to re-apply filter to new transactions")
			return fmt.Errorf("re-applying filter: %w", err)
		}
		s.transactions = source
		s.filtered = result
		s.count = filterCount(s.criteria, result)
	}
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("Transactions updated",
		logging.F(logging.FieldCount, len(snap.Transactions)),
		logging.F(logging.FieldFiltered, len(snap.FilteredData)),
		logging.F(logging.FieldFilterCount, snap.FilterCount))
	s.notify(snap)
	return nil
}

// SetStartDate sets the custom range start. The applied result is untouched.
func (s *State) SetStartDate(date string) {
	s.updateCriteria(func(c *filter.Criteria) { c.StartDate = date })
}

// SetEndDate sets the custom range end. The applied result is untouched.
func (s *State) SetEndDate(date string) {
	s.updateCriteria(func(c *filter.Criteria) { c.EndDate = date })
}

// SetTransactionPeriod sets the preset period. The applied result is untouched.
func (s *State) SetTransactionPeriod(period string) {
	s.updateCriteria(func(c *filter.Criteria) { c.Period = period })
}

// ToggleSelection adds label to the category's selection, or removes it when
// already selected. Nothing is recomputed.
func (s *State) ToggleSelection(label string, category filter.Category) error {
	switch category {
	case filter.CategoryTypes:
		s.updateCriteria(func(c *filter.Criteria) { c.Types = filter.Toggle(c.Types, label) })
	case filter.CategoryStatuses:
		s.updateCriteria(func(c *filter.Criteria) { c.Statuses = filter.Toggle(c.Statuses, label) })
	default:
		return fmt.Errorf("unknown selection category %q", category)
	}
	return nil
}

// ApplyFilter runs the engine on the source list with the current criteria,
// marks the filter as applied and recomputes the count.
func (s *State) ApplyFilter() error {
	s.mu.Lock()
	result, err := s.engine.Filter(s.transactions, s.criteria)
	if err != nil {
		s.mu.Unlock()
		s.logger.WithError(err).Warn("Failed to apply filter")
		return fmt.Errorf("applying filter: %w", err)
	}
	s.filtered = result
	s.applied = true
	s.count = filterCount(s.criteria, result)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Info("Filter applied",
		logging.F(logging.FieldPeriod, snap.Criteria.Period),
		logging.F(logging.FieldFiltered, len(snap.FilteredData)),
		logging.F(logging.FieldFilterCount, snap.FilterCount))
	s.notify(snap)
	return nil
}

// ClearFilter resets the criteria and shows the full source list again.
func (s *State) ClearFilter() {
	s.mu.Lock()
	s.criteria = filter.DefaultCriteria()
	s.filtered = s.transactions
	s.applied = false
	s.count = 0
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Info("Filter cleared", logging.F(logging.FieldCount, len(snap.Transactions)))
	s.notify(snap)
}

// ResetFilterCriteria discards edited criteria without touching the applied
// view.
func (s *State) ResetFilterCriteria() {
	s.updateCriteria(func(c *filter.Criteria) { *c = filter.DefaultCriteria() })
}

// Persisted returns the criteria and applied flag for saving.
func (s *State) Persisted() PersistedCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return PersistedCriteria{Criteria: s.criteria.Clone(), HasAppliedFilter: s.applied}
}

// Restore loads saved criteria and the applied flag. The filtered data is
// recomputed against whatever source list is present, so calling Restore
// before the first SetTransactions is the normal order.
func (s *State) Restore(p PersistedCriteria) error {
	s.mu.Lock()
	crit := p.Criteria.Clone()
	if crit.Period == "" {
		crit.Period = filter.DefaultCriteria().Period
	}

	filtered := s.transactions
	count := 0
	if p.HasAppliedFilter {
		result, err := s.engine.Filter(s.transactions, crit)
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("restoring filter: %w", err)
		}
		filtered = result
		count = filterCount(crit, result)
	}
	s.criteria = crit
	s.applied = p.HasAppliedFilter
	s.filtered = filtered
	s.count = count
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Transactions returns a copy of the source list.
func (s *State) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTransactions(s.transactions)
}

// FilteredData returns a copy of the applied result.
func (s *State) FilteredData() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTransactions(s.filtered)
}

// Criteria returns a copy of the criteria being edited.
func (s *State) Criteria() filter.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

// HasAppliedFilter reports whether FilteredData is an engine result.
func (s *State) HasAppliedFilter() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied
}

// FilterCount returns the badge count, 0 to 3.
func (s *State) FilterCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Revision increases by one on every change.
func (s *State) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Snapshot returns a consistent copy of the whole state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after each change. The
// returned function removes the subscription.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *State) updateCriteria(fn func(c *filter.Criteria)) {
	s.mu.Lock()
	crit := s.criteria.Clone()
	fn(&crit)
	s.criteria = crit
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// commitLocked bumps the revision and snapshots. Caller holds mu.
func (s *State) commitLocked() Snapshot {
	s.revision++
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Transactions:     models.CloneTransactions(s.transactions),
		FilteredData:     models.CloneTransactions(s.filtered),
		Criteria:         s.criteria.Clone(),
		HasAppliedFilter: s.applied,
		FilterCount:      s.count,
		Revision:         s.revision,
	}
}

func (s *State) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
