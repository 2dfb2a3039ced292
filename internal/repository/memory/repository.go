package memory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/domain/models"
)

// Repository defines the operations supported by the student store.
type Repository interface {
	Append(ctx context.Context, student models.Student) error
	List(ctx context.Context) ([]models.Student, error)
	Count(ctx context.Context) (int, error)
}

// StudentRepository keeps students in insertion order for the lifetime of the process.
// It is not safe for concurrent use.
type StudentRepository struct {
	students []models.Student
	logger   *zap.Logger
}

// NewStudentRepository creates a store holding the given initial records.
func NewStudentRepository(logger *zap.Logger, seed ...models.Student) *StudentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	students := make([]models.Student, 0, len(seed))
	for _, s := range seed {
		students = append(students, clone(s))
	}

	return &StudentRepository{students: students, logger: logger}
}

// Append adds a student at the end of the store.
func (r *StudentRepository) Append(ctx context.Context, student models.Student) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("append student: %w", err)
	}

	r.students = append(r.students, clone(student))
	r.logger.Debug("student appended",
		zap.String("student_id", student.ID.String()),
		zap.Int("count", len(r.students)))
	return nil
}

// List returns a copy of every student in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]models.Student, len(r.students))
	for i, s := range r.students {
		out[i] = clone(s)
	}
	return out, nil
}

// Count returns the number of stored students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return len(r.students), nil
}

func clone(s models.Student) models.Student {
	s.Scores = append([]float64(nil), s.Scores...)
	return s
}
