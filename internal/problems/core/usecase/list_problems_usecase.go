package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/ports"
)

var ErrInvalidSort = errors.New("sort must be date or difficulty")

const (
	SortByDate       = "date"
	SortByDifficulty = "difficulty"
)

type ListProblemsInput struct {
	Search     string // case-insensitive title substring
	Difficulty string
	SolvedBy   string
	Tag        string
	Sort       string // "" / "date" (newest first) or "difficulty" (Easy first)
}

type ListProblemsUseCase struct {
	repo ports.ProblemRepositoryPort
}

func NewListProblemsUseCase(repo ports.ProblemRepositoryPort) *ListProblemsUseCase {
	return &ListProblemsUseCase{repo: repo}
}

func (uc *ListProblemsUseCase) Execute(ctx context.Context, in ListProblemsInput) ([]domain.Problem, error) {
	var difficulty domain.Difficulty
	if in.Difficulty != "" {
		d, ok := domain.ParseDifficulty(in.Difficulty)
		if !ok {
			return nil, ErrInvalidDifficulty
		}
		difficulty = d
	}

	switch in.Sort {
	case "", SortByDate, SortByDifficulty:
	default:
		return nil, ErrInvalidSort
	}

	all, err := uc.repo.ListProblems(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(in.Search))

	filtered := make([]domain.Problem, 0, len(all))
	for _, p := range all {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if difficulty != "" && p.Difficulty != difficulty {
			continue
		}
		if in.SolvedBy != "" && p.SolvedBy != in.SolvedBy {
			continue
		}
		if in.Tag != "" && !p.HasTag(in.Tag) {
			continue
		}
		filtered = append(filtered, p)
	}

	if in.Sort == SortByDifficulty {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Difficulty.Rank() < filtered[j].Difficulty.Rank()
		})
	}

	return filtered, nil
}

func (uc *ListProblemsUseCase) Get(ctx context.Context, id string) (*domain.Problem, error) {
	p, err := uc.repo.GetProblem(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}
	return p, nil
}
