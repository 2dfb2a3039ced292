package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/boletim/internal/domain/models"
	"github.com/mamadbah2/boletim/internal/repository/memory"
	"github.com/mamadbah2/boletim/internal/service/reporting"
)

func newDispatcher(t *testing.T, variant models.Variant, seed ...models.Student) (*Service, *memory.StudentRepository) {
	t.Helper()
	store := memory.NewStudentRepository(nil, seed...)
	return NewService(store, reporting.NewService(store, nil), variant, nil), store
}

func count(t *testing.T, store *memory.StudentRepository) int {
	t.Helper()
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestRegister_Valid(t *testing.T) {
	svc, store := newDispatcher(t, models.VariantExtended)
	id := uuid.MustParse("6f1c2a4e-7d3b-4c1a-9e8f-0a1b2c3d4e5f")
	svc.newID = func() uuid.UUID { return id }

	student, err := svc.Register(context.Background(), models.RegistrationRequest{
		Name: " Ana ", Age: "20", Scores: "10 8 9",
	})
	require.NoError(t, err)

	assert.Equal(t, models.Student{ID: id, Name: "Ana", Age: 20, Scores: []float64{10, 8, 9}}, student)
	assert.Equal(t, 1, count(t, store))
	assert.Equal(t, 9.0, reporting.Average(student.Scores))
}

func TestRegister_RejectionsLeaveStoreUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegistrationRequest
		wantErr error
	}{
		{"blank name", models.RegistrationRequest{Name: "  ", Age: "20", Scores: "8"}, ErrNameRequired},
		{"fractional age", models.RegistrationRequest{Name: "Ana", Age: "20.5", Scores: "8"}, ErrAgeNotInteger},
		{"text age", models.RegistrationRequest{Name: "Ana", Age: "vinte", Scores: "8"}, ErrAgeNotInteger},
		{"negative age", models.RegistrationRequest{Name: "Ana", Age: "-1", Scores: "8"}, ErrAgeNegative},
		{"negative score", models.RegistrationRequest{Name: "Ana", Age: "20", Scores: "8, -1, 5"}, ErrNegativeScore},
		{"no valid score", models.RegistrationRequest{Name: "Ana", Age: "20", Scores: "11 abc"}, ErrNoValidScores},
		{"name checked first", models.RegistrationRequest{Name: "", Age: "-1", Scores: "-5"}, ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newDispatcher(t, models.VariantExtended, models.SeedStudent())

			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, count(t, store))
		})
	}
}

func TestSearch_ExtendedIsAccentAndCaseInsensitive(t *testing.T) {
	svc, _ := newDispatcher(t, models.VariantExtended,
		models.Student{Name: "José Silva", Age: 30, Scores: []float64{6}},
		models.Student{Name: "Maria", Age: 22, Scores: []float64{9}},
		models.Student{Name: "JOSEFA", Age: 41, Scores: []float64{4, 6}},
	)

	matches, err := svc.Search(context.Background(), "jose")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "José Silva", matches[0].Student.Name)
	assert.Equal(t, 1, matches[0].Index)
	assert.Equal(t, "JOSEFA", matches[1].Student.Name)
	assert.Equal(t, 3, matches[1].Index)
	assert.Equal(t, 5.0, matches[1].Average)

	matches, err = svc.Search(context.Background(), "pedro")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = svc.Search(context.Background(), " ?! ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_ClassicExactFirstHit(t *testing.T) {
	svc, _ := newDispatcher(t, models.VariantClassic,
		models.Student{Name: "Ana", Age: 20, Scores: []float64{6}},
		models.Student{Name: "ana", Age: 21, Scores: []float64{7}},
		models.Student{Name: "José", Age: 30, Scores: []float64{8}},
	)

	matches, err := svc.Search(context.Background(), "ANA")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 20, matches[0].Student.Age)

	matches, err = svc.Search(context.Background(), "jose")
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListAndReports(t *testing.T) {
	svc, _ := newDispatcher(t, models.VariantExtended)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Averages(context.Background())
	assert.ErrorIs(t, err, reporting.ErrNoStudents)
	_, err = svc.Situation(context.Background())
	assert.ErrorIs(t, err, reporting.ErrNoStudents)

	_, err = svc.Register(context.Background(), models.RegistrationRequest{Name: "Ana", Age: "20", Scores: "7"})
	require.NoError(t, err)

	report, err := svc.Situation(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Pass, 1)
	assert.Equal(t, "Ana", report.Pass[0].Student.Name)
}
