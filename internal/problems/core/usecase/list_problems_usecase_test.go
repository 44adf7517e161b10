package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/ports"
	"problem-tracker-service/internal/problems/core/usecase"
)

func sampleProblems() []domain.Problem {
	base := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	return []domain.Problem{
		{ID: "1", Title: "Merge Intervals", Difficulty: domain.Medium, Tags: []string{"Array", "Sorting"}, SolvedBy: "Gaurav", CreatedAt: base},
		{ID: "2", Title: "Two Sum", Difficulty: domain.Easy, Tags: []string{"Array"}, SolvedBy: "Her Name", CreatedAt: base.Add(-time.Hour)},
		{ID: "3", Title: "Trapping Rain Water", Difficulty: domain.Hard, Tags: []string{"Two Pointers"}, SolvedBy: "Gaurav", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "4", Title: "Two Sum II", Difficulty: domain.Medium, Tags: []string{"Two Pointers"}, SolvedBy: "Her Name", CreatedAt: base.Add(-3 * time.Hour)},
	}
}

func ids(ps []domain.Problem) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func newListUC() *usecase.ListProblemsUseCase {
	repo := &fakeProblemRepo{
		ListFn: func(ctx context.Context) ([]domain.Problem, error) {
			return sampleProblems(), nil
		},
	}
	return usecase.NewListProblemsUseCase(repo)
}

func TestListProblems_Filters(t *testing.T) {
	cases := []struct {
		name string
		in   usecase.ListProblemsInput
		want []string
	}{
		{"no filters keeps store order", usecase.ListProblemsInput{}, []string{"1", "2", "3", "4"}},
		{"search is case-insensitive", usecase.ListProblemsInput{Search: "two sum"}, []string{"2", "4"}},
		{"difficulty", usecase.ListProblemsInput{Difficulty: "medium"}, []string{"1", "4"}},
		{"solved by", usecase.ListProblemsInput{SolvedBy: "Gaurav"}, []string{"1", "3"}},
		{"tag", usecase.ListProblemsInput{Tag: "Two Pointers"}, []string{"3", "4"}},
		{"combined", usecase.ListProblemsInput{Tag: "Array", SolvedBy: "Her Name"}, []string{"2"}},
		{"sort by difficulty is stable", usecase.ListProblemsInput{Sort: usecase.SortByDifficulty}, []string{"2", "1", "4", "3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newListUC().Execute(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, gotIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, gotIDs)
				}
			}
		})
	}
}

func TestListProblems_InvalidInput(t *testing.T) {
	uc := newListUC()

	if _, err := uc.Execute(context.Background(), usecase.ListProblemsInput{Sort: "title"}); !errors.Is(err, usecase.ErrInvalidSort) {
		t.Errorf("expected ErrInvalidSort, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.ListProblemsInput{Difficulty: "Brutal"}); !errors.Is(err, usecase.ErrInvalidDifficulty) {
		t.Errorf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestListProblems_RepositoryError(t *testing.T) {
	repo := &fakeProblemRepo{
		ListFn: func(ctx context.Context) ([]domain.Problem, error) {
			return nil, errors.New("db error")
		},
	}

	_, err := usecase.NewListProblemsUseCase(repo).Execute(context.Background(), usecase.ListProblemsInput{})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestGetProblem(t *testing.T) {
	repo := &fakeProblemRepo{
		GetFn: func(ctx context.Context, id string) (*domain.Problem, error) {
			if id != "1" {
				return nil, ports.ErrNotFound
			}
			p := sampleProblems()[0]
			return &p, nil
		},
	}
	uc := usecase.NewListProblemsUseCase(repo)

	p, err := uc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Merge Intervals" {
		t.Errorf("unexpected problem: %+v", p)
	}

	if _, err := uc.Get(context.Background(), "nope"); !errors.Is(err, usecase.ErrProblemNotFound) {
		t.Errorf("expected ErrProblemNotFound, got %v", err)
	}
}
