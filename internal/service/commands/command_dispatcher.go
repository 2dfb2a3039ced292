package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/domain/models"
	repo "github.com/mamadbah2/boletim/internal/repository/memory"
	"github.com/mamadbah2/boletim/internal/service/reporting"
	"github.com/mamadbah2/boletim/pkg/textnorm"
)

// ErrEmptyQuery indicates the search query had nothing left after normalization.
var ErrEmptyQuery = errors.New("search query is empty")

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	AveragesReport(ctx context.Context) (models.AveragesReport, error)
	SituationReport(ctx context.Context) (models.SituationReport, error)
}

// Dispatcher executes the menu operations against the student store.
type Dispatcher interface {
	Register(ctx context.Context, req models.RegistrationRequest) (models.Student, error)
	List(ctx context.Context) ([]models.StudentAverage, error)
	Search(ctx context.Context, query string) ([]models.SearchMatch, error)
	Averages(ctx context.Context) (models.AveragesReport, error)
	Situation(ctx context.Context) (models.SituationReport, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	repo      repo.Repository
	reporting ReportingAdapter
	variant   models.Variant
	logger    *zap.Logger
	newID     func() uuid.UUID
}

// NewService constructs a command dispatcher.
func NewService(repository repo.Repository, reporting ReportingAdapter, variant models.Variant, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repository,
		reporting: reporting,
		variant:   variant,
		logger:    logger,
		newID:     uuid.New,
	}
}

// Register validates the raw answers and appends a new student.
// Nothing is stored when any field is rejected.
func (s *Service) Register(ctx context.Context, req models.RegistrationRequest) (models.Student, error) {
	student, err := s.buildStudent(req)
	if err != nil {
		s.logger.Debug("registration rejected", zap.Error(err))
		return models.Student{}, err
	}

	if err := s.repo.Append(ctx, student); err != nil {
		return models.Student{}, fmt.Errorf("save student: %w", err)
	}

	s.logger.Info("student registered",
		zap.String("student_id", student.ID.String()),
		zap.Int("age", student.Age),
		zap.Int("scores", len(student.Scores)))
	return student, nil
}

// List returns every student with its average, in store order.
func (s *Service) List(ctx context.Context) ([]models.StudentAverage, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return reporting.Averages(students), nil
}

// Search looks students up by name. The extended variant matches normalized
// substrings and returns every hit; the classic variant returns the first
// case-insensitive exact match.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchMatch, error) {
	if s.variant == models.VariantExtended && textnorm.Normalize(query) == "" {
		return nil, ErrEmptyQuery
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.SearchMatch
	for _, candidate := range all {
		if s.variant != models.VariantExtended {
			if strings.ToLower(candidate.Student.Name) == strings.ToLower(query) {
				matches = append(matches, candidate)
				break
			}
			continue
		}
		if textnorm.Contains(candidate.Student.Name, query) {
			matches = append(matches, candidate)
		}
	}

	s.logger.Debug("search completed",
		zap.String("variant", string(s.variant)),
		zap.Int("matches", len(matches)))
	return matches, nil
}

// Averages delegates to the reporting service.
func (s *Service) Averages(ctx context.Context) (models.AveragesReport, error) {
	return s.reporting.AveragesReport(ctx)
}

// Situation delegates to the reporting service.
func (s *Service) Situation(ctx context.Context) (models.SituationReport, error) {
	return s.reporting.SituationReport(ctx)
}

// buildStudent checks fields in prompt order: name, age, then scores.
func (s *Service) buildStudent(req models.RegistrationRequest) (models.Student, error) {
	name, err := ParseName(req.Name)
	if err != nil {
		return models.Student{}, err
	}

	age, err := ParseAge(req.Age)
	if err != nil {
		return models.Student{}, err
	}

	scores, err := ParseScores(req.Scores)
	if err != nil {
		return models.Student{}, err
	}

	return models.Student{ID: s.newID(), Name: name, Age: age, Scores: scores}, nil
}
