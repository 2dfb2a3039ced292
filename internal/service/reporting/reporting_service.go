package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/domain/models"
	repo "github.com/mamadbah2/boletim/internal/repository/memory"
)

// ErrNoStudents indicates a report was requested on an empty store.
var ErrNoStudents = errors.New("no students registered")

// Service computes the class statistics shown by the menu.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// Average returns the arithmetic mean of the scores, or 0 when there are none.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// ClassAverage is the mean of the per-student averages, not of the pooled scores.
func ClassAverage(averages []models.StudentAverage) float64 {
	if len(averages) == 0 {
		return 0
	}
	var sum float64
	for _, a := range averages {
		sum += a.Average
	}
	return sum / float64(len(averages))
}

// TopScorer returns the first entry holding the strictly greatest average.
func TopScorer(averages []models.StudentAverage) (models.StudentAverage, bool) {
	if len(averages) == 0 {
		return models.StudentAverage{}, false
	}
	best := averages[0]
	for _, a := range averages[1:] {
		if a.Average > best.Average {
			best = a
		}
	}
	return best, true
}

// Classify buckets an average: >= 7.0 pass, >= 5.0 conditional, otherwise fail.
func Classify(average float64) models.Situation {
	switch {
	case average >= models.PassThreshold:
		return models.SituationPass
	case average >= models.ConditionalFloor:
		return models.SituationConditional
	default:
		return models.SituationFail
	}
}

// Averages pairs every student with its average, keeping store order and 1-based indexes.
func Averages(students []models.Student) []models.StudentAverage {
	out := make([]models.StudentAverage, len(students))
	for i, s := range students {
		out[i] = models.StudentAverage{Index: i + 1, Student: s, Average: Average(s.Scores)}
	}
	return out
}

// AveragesReport builds the per-student averages, class average and top scorer.
func (s *Service) AveragesReport(ctx context.Context) (models.AveragesReport, error) {
	averages, err := s.load(ctx)
	if err != nil {
		return models.AveragesReport{}, err
	}

	top, _ := TopScorer(averages)
	report := models.AveragesReport{
		Students:     averages,
		ClassAverage: ClassAverage(averages),
		Top:          top,
	}

	s.logger.Debug("averages report built",
		zap.Int("students", len(averages)),
		zap.Float64("class_average", report.ClassAverage),
		zap.String("top_student_id", top.Student.ID.String()))
	return report, nil
}

// SituationReport splits students into pass, conditional and fail buckets,
// each sorted by average descending. Ties keep store order.
func (s *Service) SituationReport(ctx context.Context) (models.SituationReport, error) {
	averages, err := s.load(ctx)
	if err != nil {
		return models.SituationReport{}, err
	}

	var report models.SituationReport
	for _, a := range averages {
		switch Classify(a.Average) {
		case models.SituationPass:
			report.Pass = append(report.Pass, a)
		case models.SituationConditional:
			report.Conditional = append(report.Conditional, a)
		default:
			report.Fail = append(report.Fail, a)
		}
	}

	sortDescending(report.Pass)
	sortDescending(report.Conditional)
	sortDescending(report.Fail)

	s.logger.Debug("situation report built",
		zap.Int("pass", len(report.Pass)),
		zap.Int("conditional", len(report.Conditional)),
		zap.Int("fail", len(report.Fail)))
	return report, nil
}

func (s *Service) load(ctx context.Context) ([]models.StudentAverage, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	if len(students) == 0 {
		return nil, ErrNoStudents
	}
	return Averages(students), nil
}

func sortDescending(bucket []models.StudentAverage) {
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Average > bucket[j].Average
	})
}
