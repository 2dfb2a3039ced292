package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/boletim/internal/domain/models"
)

func TestStudentRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(nil, models.SeedStudent())

	require.NoError(t, repo.Append(ctx, models.Student{ID: uuid.New(), Name: "Ana", Age: 20, Scores: []float64{10, 8, 9}}))
	require.NoError(t, repo.Append(ctx, models.Student{ID: uuid.New(), Name: "Bia", Age: 21, Scores: []float64{5}}))

	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Pablo Henrique Dias", students[0].Name)
	assert.Equal(t, "Ana", students[1].Name)
	assert.Equal(t, "Bia", students[2].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStudentRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	scores := []float64{7, 8}
	repo := NewStudentRepository(nil)
	require.NoError(t, repo.Append(ctx, models.Student{Name: "Caio", Scores: scores}))

	scores[0] = 0
	students, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, students[0].Scores)

	students[0].Scores[1] = 0
	students[0].Name = "changed"
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Caio", again[0].Name)
	assert.Equal(t, []float64{7, 8}, again[0].Scores)
}

func TestStudentRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewStudentRepository(nil)
	err := repo.Append(ctx, models.Student{Name: "Davi"})
	require.ErrorIs(t, err, context.Canceled)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
