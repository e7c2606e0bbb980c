// Package memstore is an in-memory stand-in for the postgres repos, used by
// tests. Transactions are serialized and roll back by restoring a snapshot.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/sports"
	"github.com/2beens/trainingload/internal/trainingload/weeks"
	"github.com/2beens/trainingload/pkg"
)

type focusRow struct {
	id      int64
	sportID int64
	name    string
}

type loadKey struct {
	userID   int64
	muscleID int64
	date     time.Time
}

type state struct {
	nextID   int64
	sports   map[int64]string
	focuses  []focusRow
	muscles  map[int64]string
	configs  []sports.MuscleLoadConfig
	sessions map[int64]sessions.Session
	weeks    map[int64]weeks.Week
	loads    map[loadKey]float64
	profiles map[int64]athletes.Profile
}

func (st state) clone() state {
	return state{
		nextID:   st.nextID,
		sports:   maps.Clone(st.sports),
		focuses:  slices.Clone(st.focuses),
		muscles:  maps.Clone(st.muscles),
		configs:  slices.Clone(st.configs),
		sessions: maps.Clone(st.sessions),
		weeks:    maps.Clone(st.weeks),
		loads:    maps.Clone(st.loads),
		profiles: maps.Clone(st.profiles),
	}
}

type Store struct {
	txMu sync.Mutex

	mu             sync.Mutex
	st             state
	failures       map[string]error
	weekMigrations int
	dateLocks      int
}

func New() *Store {
	return &Store{
		st: state{
			sports:   make(map[int64]string),
			muscles:  make(map[int64]string),
			sessions: make(map[int64]sessions.Session),
			weeks:    make(map[int64]weeks.Week),
			loads:    make(map[loadKey]float64),
			profiles: make(map[int64]athletes.Profile),
		},
		failures: make(map[string]error),
	}
}

type txKey struct{}

// InTx runs fn with every write rolled back when it fails. Nested calls join
// the outer scope.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	defer func() {
		p := recover()
		if err != nil || p != nil {
			s.mu.Lock()
			s.st = snapshot
			s.mu.Unlock()
		}
		if p != nil {
			panic(p)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

// FailOn makes op return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) nextID() int64 {
	s.st.nextID++
	return s.st.nextID
}

func (s *Store) AddSport(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.sports[id] = name
	return id
}

func (s *Store) AddFocus(sportID int64, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.focuses = append(s.st.focuses, focusRow{id: id, sportID: sportID, name: name})
	return id
}

func (s *Store) AddMuscle(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.muscles[id] = name
	return id
}

// AddMuscleConfig stores cfg with a fresh id; the muscle name is filled in
// from the muscle group.
func (s *Store) AddMuscleConfig(cfg sports.MuscleLoadConfig) sports.MuscleLoadConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.ID = s.nextID()
	cfg.MuscleName = s.st.muscles[cfg.MuscleID]
	s.st.configs = append(s.st.configs, cfg)
	return cfg
}

func (s *Store) SetProfile(p athletes.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.profiles[p.UserID] = p
}

func (s *Store) AddWeek(userID int64, start time.Time, label *string) weeks.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := weeks.Week{ID: s.nextID(), UserID: userID, StartDate: pkg.Day(start), Label: label}
	s.st.weeks[w.ID] = w
	return w
}

// AllWeeks returns the weeks of userID ordered by start date.
func (s *Store) AllWeeks(userID int64) []weeks.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []weeks.Week
	for _, w := range s.st.weeks {
		if w.UserID == userID {
			all = append(all, w)
		}
	}
	slices.SortFunc(all, func(a, b weeks.Week) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return all
}

func (s *Store) WeekMigrations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekMigrations
}

func (s *Store) DateLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dateLocks
}

// DailyLoad returns the aggregate of (userID, muscleID, date) and whether a
// row exists.
func (s *Store) DailyLoad(userID, muscleID int64, date time.Time) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.st.loads[loadKey{userID: userID, muscleID: muscleID, date: pkg.Day(date)}]
	return score, ok
}

// DailyLoads returns every aggregate of userID on date keyed by muscle id.
func (s *Store) DailyLoads(userID int64, date time.Time) map[int64]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]float64)
	for k, v := range s.st.loads {
		if k.userID == userID && k.date.Equal(pkg.Day(date)) {
			out[k.muscleID] = v
		}
	}
	return out
}

func (s *Store) Sports() *SportsRepo {
	return &SportsRepo{s: s}
}

func (s *Store) Sessions() *SessionsRepo {
	return &SessionsRepo{s: s}
}

func (s *Store) Weeks() *WeeksRepo {
	return &WeeksRepo{s: s}
}

func (s *Store) DailyLoadsRepo() *DailyLoadsRepo {
	return &DailyLoadsRepo{s: s}
}

func (s *Store) Athletes() *AthletesRepo {
	return &AthletesRepo{s: s}
}
