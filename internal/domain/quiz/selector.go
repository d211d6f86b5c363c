package quiz

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/trivia-api/internal/domain"
)

// Common errors
var (
	ErrInvalidParams = errors.New("max questions per session must be at least 1")
	ErrNilRepository = errors.New("question repository cannot be nil")
)

// QuestionRepository is the read side the selector needs from persistence.
type QuestionRepository interface {
	// FindQuestions returns the questions matching filter. A nil CategoryID
	// matches every category; ExcludeIDs are never returned.
	FindQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error)
}

// RandomSource picks an index in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// Selector chooses the next question of a quiz session.
//
// Session state lives with the caller: every call receives the full list of
// questions already asked, so one Selector serves all sessions concurrently.
type Selector struct {
	repo   QuestionRepository
	params *Params

	mu  sync.Mutex
	rng RandomSource
}

// NewSelector creates a Selector seeded from the clock.
func NewSelector(repo QuestionRepository, params *Params) (*Selector, error) {
	return NewSelectorWithSource(repo, params, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSelectorWithSource creates a Selector that draws from rng. Tests pass a
// seeded source to make selections reproducible.
func NewSelectorWithSource(repo QuestionRepository, params *Params, rng RandomSource) (*Selector, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Selector{
		repo:   repo,
		params: params,
		rng:    rng,
	}, nil
}

// MaxQuestionsPerSession returns the session cap the selector enforces.
func (s *Selector) MaxQuestionsPerSession() int {
	return s.params.MaxQuestionsPerSession
}

// SelectNext returns a random question in scope that is not in previouslyAsked.
// It returns (nil, nil) when the session is over: either the cap has been
// reached or no eligible question is left.
func (s *Selector) SelectNext(
	ctx context.Context,
	scope Scope,
	previouslyAsked []int64,
) (*domain.Question, error) {
	asked := toSet(previouslyAsked)
	if len(asked) >= s.params.MaxQuestionsPerSession {
		return nil, nil
	}

	if scope.IsNone() {
		return nil, nil
	}

	filter := domain.QuestionFilter{ExcludeIDs: setToSortedSlice(asked)}
	if id, ok := scope.CategoryID(); ok {
		filter.CategoryID = &id
	}

	candidates, err := s.repo.FindQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find questions for %s: %w", scope, err)
	}

	eligible := eligibleQuestions(candidates, asked, scope)
	if len(eligible) == 0 {
		return nil, nil
	}

	return eligible[s.intn(len(eligible))], nil
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// eligibleQuestions drops anything already asked or outside the scope and
// orders the rest by ID so a seeded source always picks the same question.
func eligibleQuestions(candidates []*domain.Question, asked map[int64]struct{}, scope Scope) []*domain.Question {
	categoryID, restricted := scope.CategoryID()

	out := make([]*domain.Question, 0, len(candidates))
	seen := make(map[int64]struct{}, len(candidates))
	for _, q := range candidates {
		if q == nil {
			continue
		}
		if _, ok := asked[q.ID]; ok {
			continue
		}
		if restricted && q.CategoryID != categoryID {
			continue
		}
		if _, ok := seen[q.ID]; ok {
			continue
		}
		seen[q.ID] = struct{}{}
		out = append(out, q)
	}

	slices.SortFunc(out, func(a, b *domain.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func setToSortedSlice(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
