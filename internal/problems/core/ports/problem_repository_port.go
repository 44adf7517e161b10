package ports

import (
	"context"
	"errors"

	"problem-tracker-service/internal/problems/core/domain"
)

var ErrNotFound = errors.New("problem not found")

type ProblemRepositoryPort interface {
	InsertProblem(ctx context.Context, p *domain.Problem) error
	// ListProblems returns every problem, newest first.
	ListProblems(ctx context.Context) ([]domain.Problem, error)
	// GetProblem and AppendComment return ErrNotFound for an unknown id.
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)
	AppendComment(ctx context.Context, id string, c domain.Comment) error
}
