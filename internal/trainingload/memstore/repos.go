package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/internal/trainingload/dailyloads"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/sports"
	"github.com/2beens/trainingload/internal/trainingload/weeks"
	"github.com/2beens/trainingload/pkg"
)

type SportsRepo struct {
	s *Store
}

func (r *SportsRepo) FindFocus(_ context.Context, sportID int64, name string) (*int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sports.find_focus"); err != nil {
		return nil, err
	}

	var found *int64
	for _, f := range r.s.st.focuses {
		if f.sportID != sportID || !strings.EqualFold(f.name, name) {
			continue
		}
		if found == nil || f.id < *found {
			id := f.id
			found = &id
		}
	}
	return found, nil
}

func (r *SportsRepo) ListMuscleConfigs(_ context.Context, sportID int64, focusID *int64) ([]sports.MuscleLoadConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sports.list_muscle_configs"); err != nil {
		return nil, err
	}

	var configs []sports.MuscleLoadConfig
	// reverse insertion order
	for i := len(r.s.st.configs) - 1; i >= 0; i-- {
		c := r.s.st.configs[i]
		if c.SportID != sportID {
			continue
		}
		if c.FocusID == nil || (focusID != nil && *c.FocusID == *focusID) {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

type SessionsRepo struct {
	s *Store
}

func (r *SessionsRepo) Add(_ context.Context, s sessions.Session) (*sessions.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.add"); err != nil {
		return nil, err
	}
	if _, ok := r.s.st.sports[s.SportID]; !ok {
		return nil, fmt.Errorf("add session: %w", sessions.ErrUnknownSport)
	}

	s.ID = r.s.nextID()
	s.Date = pkg.Day(s.Date)
	r.s.st.sessions[s.ID] = s
	return &s, nil
}

func (r *SessionsRepo) Get(_ context.Context, userID, id int64) (*sessions.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.get"); err != nil {
		return nil, err
	}

	s, ok := r.s.st.sessions[id]
	if !ok || s.UserID != userID {
		return nil, sessions.ErrSessionNotFound
	}
	return &s, nil
}

func (r *SessionsRepo) Update(_ context.Context, s sessions.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.update"); err != nil {
		return err
	}

	current, ok := r.s.st.sessions[s.ID]
	if !ok || current.UserID != s.UserID {
		return sessions.ErrSessionNotFound
	}
	if _, ok := r.s.st.sports[s.SportID]; !ok {
		return fmt.Errorf("update session: %w", sessions.ErrUnknownSport)
	}
	s.Date = pkg.Day(s.Date)
	r.s.st.sessions[s.ID] = s
	return nil
}

func (r *SessionsRepo) Delete(_ context.Context, userID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.delete"); err != nil {
		return err
	}

	s, ok := r.s.st.sessions[id]
	if !ok || s.UserID != userID {
		return sessions.ErrSessionNotFound
	}
	delete(r.s.st.sessions, id)
	return nil
}

func (r *SessionsRepo) ListByDate(ctx context.Context, userID int64, date time.Time) ([]sessions.Session, error) {
	return r.ListRange(ctx, userID, date, date)
}

func (r *SessionsRepo) ListRange(_ context.Context, userID int64, from, to time.Time) ([]sessions.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("sessions.list"); err != nil {
		return nil, err
	}

	from, to = pkg.Day(from), pkg.Day(to)
	var list []sessions.Session
	for _, s := range r.s.st.sessions {
		if s.UserID == userID && !s.Date.Before(from) && !s.Date.After(to) {
			list = append(list, s)
		}
	}
	slices.SortFunc(list, func(a, b sessions.Session) int {
		return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.ID, b.ID))
	})
	return list, nil
}

func (r *SessionsRepo) SportBreakdown(ctx context.Context, userID int64, from, to time.Time) ([]sessions.SportBreakdown, error) {
	list, err := r.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	bySport := make(map[int64]*sessions.SportBreakdown)
	for _, s := range list {
		b, ok := bySport[s.SportID]
		if !ok {
			b = &sessions.SportBreakdown{SportID: s.SportID, SportName: r.s.st.sports[s.SportID]}
			bySport[s.SportID] = b
		}
		b.Sessions++
		b.TotalDuration += s.DurationMinutes
	}

	var breakdown []sessions.SportBreakdown
	for _, b := range bySport {
		breakdown = append(breakdown, *b)
	}
	slices.SortFunc(breakdown, func(a, b sessions.SportBreakdown) int {
		return cmp.Or(cmp.Compare(b.TotalDuration, a.TotalDuration), cmp.Compare(a.SportID, b.SportID))
	})
	return breakdown, nil
}

type WeeksRepo struct {
	s *Store
}

func (r *WeeksRepo) GetByStart(_ context.Context, userID int64, start time.Time) (*weeks.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("weeks.get_by_start"); err != nil {
		return nil, err
	}

	start = pkg.Day(start)
	for _, w := range r.s.st.weeks {
		if w.UserID == userID && w.StartDate.Equal(start) {
			return &w, nil
		}
	}
	return nil, nil
}

func (r *WeeksRepo) FindLegacy(_ context.Context, userID int64, anchor, from, to time.Time) (*weeks.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	anchor, from, to = pkg.Day(anchor), pkg.Day(from), pkg.Day(to)
	distance := func(w weeks.Week) time.Duration {
		d := w.StartDate.Sub(anchor)
		if d < 0 {
			return -d
		}
		return d
	}

	var best *weeks.Week
	for _, w := range r.s.st.weeks {
		if w.UserID != userID || w.StartDate.Before(from) || w.StartDate.After(to) || w.StartDate.Equal(anchor) {
			continue
		}
		if best == nil ||
			distance(w) < distance(*best) ||
			(distance(w) == distance(*best) && w.StartDate.Before(best.StartDate)) {
			candidate := w
			best = &candidate
		}
	}
	return best, nil
}

func (r *WeeksRepo) UpdateStart(_ context.Context, weekID int64, start time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.st.weeks[weekID]
	if !ok {
		return nil
	}
	start = pkg.Day(start)
	for _, other := range r.s.st.weeks {
		if other.UserID == w.UserID && other.StartDate.Equal(start) {
			return nil
		}
	}
	w.StartDate = start
	r.s.st.weeks[weekID] = w
	r.s.weekMigrations++
	return nil
}

func (r *WeeksRepo) InsertIfAbsent(_ context.Context, userID int64, start time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("weeks.insert"); err != nil {
		return err
	}

	start = pkg.Day(start)
	for _, w := range r.s.st.weeks {
		if w.UserID == userID && w.StartDate.Equal(start) {
			return nil
		}
	}
	id := r.s.nextID()
	r.s.st.weeks[id] = weeks.Week{ID: id, UserID: userID, StartDate: start}
	return nil
}

type DailyLoadsRepo struct {
	s *Store
}

func (r *DailyLoadsRepo) LockDate(context.Context, int64, time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dateLocks++
	return nil
}

func (r *DailyLoadsRepo) DeleteDate(_ context.Context, userID int64, date time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("dailyloads.delete_date"); err != nil {
		return err
	}

	date = pkg.Day(date)
	for k := range r.s.st.loads {
		if k.userID == userID && k.date.Equal(date) {
			delete(r.s.st.loads, k)
		}
	}
	return nil
}

func (r *DailyLoadsRepo) MergeAdd(_ context.Context, userID, muscleID int64, date time.Time, score float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("dailyloads.merge_add"); err != nil {
		return err
	}

	r.s.st.loads[loadKey{userID: userID, muscleID: muscleID, date: pkg.Day(date)}] += score
	return nil
}

func (r *DailyLoadsRepo) SumByMuscle(_ context.Context, userID int64, from, to time.Time) ([]dailyloads.MuscleTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("dailyloads.sum_by_muscle"); err != nil {
		return nil, err
	}

	from, to = pkg.Day(from), pkg.Day(to)
	byMuscle := make(map[int64]float64)
	for k, v := range r.s.st.loads {
		if k.userID == userID && !k.date.Before(from) && !k.date.After(to) {
			byMuscle[k.muscleID] += v
		}
	}

	totals := make([]dailyloads.MuscleTotal, 0, len(byMuscle))
	for id, total := range byMuscle {
		totals = append(totals, dailyloads.MuscleTotal{MuscleID: id, MuscleName: r.s.st.muscles[id], Total: total})
	}
	slices.SortFunc(totals, func(a, b dailyloads.MuscleTotal) int {
		return cmp.Compare(a.MuscleID, b.MuscleID)
	})
	return totals, nil
}

type AthletesRepo struct {
	s *Store
}

func (r *AthletesRepo) GetProfile(_ context.Context, userID int64) (*athletes.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("athletes.get_profile"); err != nil {
		return nil, err
	}

	p, ok := r.s.st.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
