package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"problem-tracker-service/internal/leetcode"
	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreProblemUseCase interface {
	Execute(ctx context.Context, in usecase.StoreProblemInput) (*domain.Problem, error)
	AddComment(ctx context.Context, problemID string, in usecase.AddCommentInput) (*domain.Comment, error)
}

type ListProblemsUseCase interface {
	Execute(ctx context.Context, in usecase.ListProblemsInput) ([]domain.Problem, error)
	Get(ctx context.Context, id string) (*domain.Problem, error)
}

type CSVExporter interface {
	Write(w io.Writer, problems []domain.Problem) error
	Filename(now time.Time) string
}

type MetadataFetcher interface {
	Fetch(ctx context.Context, problemURL string) (*leetcode.Metadata, error)
}

type ProblemHandler struct {
	storeUC  StoreProblemUseCase
	listUC   ListProblemsUseCase
	exporter CSVExporter
	metadata MetadataFetcher
	loc      *time.Location
	now      func() time.Time
}

// NewProblemHandler builds the handler. Relative dates in responses are
// computed against the calendar in loc.
func NewProblemHandler(storeUC StoreProblemUseCase, listUC ListProblemsUseCase, exporter CSVExporter, metadata MetadataFetcher, loc *time.Location) *ProblemHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ProblemHandler{
		storeUC:  storeUC,
		listUC:   listUC,
		exporter: exporter,
		metadata: metadata,
		loc:      loc,
		now:      time.Now,
	}
}

func (h *ProblemHandler) localNow() time.Time {
	return h.now().In(h.loc)
}

// Register mounts the problem routes on r. The export route is registered
// before /:id so it is not captured as an id.
func (h *ProblemHandler) Register(r fiber.Router) {
	r.Post("/problems", h.CreateProblem)
	r.Get("/problems", h.ListProblems)
	r.Get("/problems/export.csv", h.ExportCSV)
	r.Get("/problems/:id", h.GetProblem)
	r.Post("/problems/:id/comments", h.AddComment)
	r.Post("/leetcode", h.FetchMetadata)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

// CreateProblem godoc
// @Summary Log a solved problem
// @Description Validates and stores a problem for one of the two users
// @Tags Problems
// @Accept json
// @Produce json
// @Security PinToken
// @Param request body CreateProblemRequest true "Problem payload"
// @Success 201 {object} ProblemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/problems [post]
func (h *ProblemHandler) CreateProblem(c *fiber.Ctx) error {
	var req CreateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	p, err := h.storeUC.Execute(c.UserContext(), usecase.StoreProblemInput{
		Title:      req.Title,
		Link:       req.Link,
		Difficulty: req.Difficulty,
		Tags:       req.Tags,
		SolvedBy:   req.SolvedBy,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProblem),
			errors.Is(err, usecase.ErrInvalidDifficulty),
			errors.Is(err, usecase.ErrInvalidLink):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_problem",
				Message: err.Error(),
			})
		default:
			return internalError(c)
		}
	}

	return c.Status(http.StatusCreated).JSON(newProblemResponse(*p, h.localNow()))
}

func listInput(c *fiber.Ctx) usecase.ListProblemsInput {
	return usecase.ListProblemsInput{
		Search:     c.Query("search"),
		Difficulty: c.Query("difficulty"),
		SolvedBy:   c.Query("solved_by"),
		Tag:        c.Query("tag"),
		Sort:       c.Query("sort"),
	}
}

func listError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDifficulty),
		errors.Is(err, usecase.ErrInvalidSort):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	default:
		return internalError(c)
	}
}

// ListProblems godoc
// @Summary List problems
// @Description Filters by title search, difficulty, author and tag; sorts by date (default) or difficulty
// @Tags Problems
// @Produce json
// @Security PinToken
// @Param search query string false "Case-insensitive title substring"
// @Param difficulty query string false "Easy, Medium or Hard"
// @Param solved_by query string false "Author name"
// @Param tag query string false "Tag"
// @Param sort query string false "date or difficulty"
// @Success 200 {object} ListProblemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/problems [get]
func (h *ProblemHandler) ListProblems(c *fiber.Ctx) error {
	problems, err := h.listUC.Execute(c.UserContext(), listInput(c))
	if err != nil {
		return listError(c, err)
	}

	resp := ListProblemsResponse{
		Count:    len(problems),
		Problems: make([]ProblemResponse, 0, len(problems)),
	}
	now := h.localNow()
	for _, p := range problems {
		resp.Problems = append(resp.Problems, newProblemResponse(p, now))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ExportCSV godoc
// @Summary Export problems as CSV
// @Description Same filters as the list endpoint; responds with a CSV attachment
// @Tags Problems
// @Produce text/csv
// @Security PinToken
// @Param search query string false "Case-insensitive title substring"
// @Param difficulty query string false "Easy, Medium or Hard"
// @Param solved_by query string false "Author name"
// @Param tag query string false "Tag"
// @Param sort query string false "date or difficulty"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/problems/export.csv [get]
func (h *ProblemHandler) ExportCSV(c *fiber.Ctx) error {
	problems, err := h.listUC.Execute(c.UserContext(), listInput(c))
	if err != nil {
		return listError(c, err)
	}

	if len(problems) == 0 {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_problems",
			Message: "no problems to export",
		})
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, problems); err != nil {
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.exporter.Filename(h.now())))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// GetProblem godoc
// @Summary Get a problem
// @Description Returns one problem with its comment thread
// @Tags Problems
// @Produce json
// @Security PinToken
// @Param id path string true "Problem ID"
// @Success 200 {object} ProblemResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/problems/{id} [get]
func (h *ProblemHandler) GetProblem(c *fiber.Ctx) error {
	p, err := h.listUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrProblemNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "not_found",
			})
		}
		return internalError(c)
	}

	return c.Status(http.StatusOK).JSON(newProblemResponse(*p, h.localNow()))
}

// AddComment godoc
// @Summary Comment on a problem
// @Description Appends a comment to the problem's thread
// @Tags Problems
// @Accept json
// @Produce json
// @Security PinToken
// @Param id path string true "Problem ID"
// @Param request body AddCommentRequest true "Comment payload"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/problems/{id}/comments [post]
func (h *ProblemHandler) AddComment(c *fiber.Ctx) error {
	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	comment, err := h.storeUC.AddComment(c.UserContext(), c.Params("id"), usecase.AddCommentInput{
		User: req.User,
		Text: req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidComment):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_comment",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrProblemNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "not_found",
			})
		default:
			return internalError(c)
		}
	}

	return c.Status(http.StatusCreated).JSON(newCommentResponse(*comment))
}

// FetchMetadata godoc
// @Summary Auto-fill from LeetCode
// @Description Looks up title, difficulty and topic tags for a LeetCode problem URL
// @Tags Problems
// @Accept json
// @Produce json
// @Security PinToken
// @Param request body LeetCodeRequest true "Problem URL"
// @Success 200 {object} LeetCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/leetcode [post]
func (h *ProblemHandler) FetchMetadata(c *fiber.Ctx) error {
	var req LeetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	meta, err := h.metadata.Fetch(c.UserContext(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, leetcode.ErrInvalidURL):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_url",
				Message: err.Error(),
			})
		case errors.Is(err, leetcode.ErrNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "problem_not_found",
			})
		default:
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error: "upstream_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(LeetCodeResponse{
		Title:      meta.Title,
		Difficulty: meta.Difficulty,
		Tags:       meta.Tags,
	})
}
