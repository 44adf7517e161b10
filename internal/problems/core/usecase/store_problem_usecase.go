package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/ports"
)

var (
	ErrInvalidProblem    = errors.New("invalid problem")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidLink       = errors.New("link must be an http(s) URL")
	ErrInvalidComment    = errors.New("comment user and text are required")
	ErrProblemNotFound   = errors.New("problem not found")
)

type StoreProblemUseCase struct {
	repo  ports.ProblemRepositoryPort
	now   func() time.Time
	newID func() string
}

func NewStoreProblemUseCase(repo ports.ProblemRepositoryPort) *StoreProblemUseCase {
	return &StoreProblemUseCase{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type StoreProblemInput struct {
	Title      string
	Link       string
	Difficulty string
	Tags       []string
	SolvedBy   string
	Notes      string
}

func (uc *StoreProblemUseCase) Execute(ctx context.Context, in StoreProblemInput) (*domain.Problem, error) {
	title := strings.TrimSpace(in.Title)
	solvedBy := strings.TrimSpace(in.SolvedBy)
	if title == "" || solvedBy == "" {
		return nil, ErrInvalidProblem
	}

	difficulty, ok := domain.ParseDifficulty(in.Difficulty)
	if !ok {
		return nil, ErrInvalidDifficulty
	}

	// Problems solved off-platform have no link.
	link := strings.TrimSpace(in.Link)
	if link != "" && !validLink(link) {
		return nil, ErrInvalidLink
	}

	p := &domain.Problem{
		ID:         uc.newID(),
		Title:      title,
		Link:       link,
		Difficulty: difficulty,
		Tags:       normalizeTags(in.Tags),
		SolvedBy:   solvedBy,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  uc.now(),
		Comments:   []domain.Comment{},
	}

	if err := uc.repo.InsertProblem(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

type AddCommentInput struct {
	User string
	Text string
}

func (uc *StoreProblemUseCase) AddComment(ctx context.Context, problemID string, in AddCommentInput) (*domain.Comment, error) {
	user := strings.TrimSpace(in.User)
	text := strings.TrimSpace(in.Text)
	if user == "" || text == "" {
		return nil, ErrInvalidComment
	}

	c := domain.Comment{
		User:      user,
		Text:      text,
		CreatedAt: uc.now(),
	}

	if err := uc.repo.AppendComment(ctx, problemID, c); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}

	return &c, nil
}

// normalizeTags trims tags, drops empties and keeps the first occurrence of
// each tag in input order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func validLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
