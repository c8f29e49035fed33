package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func date(year int, month time.Month) *time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestStore_Commit_AllocatesSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Commit(ctx, &domain.PersonRecord{
		Name: "Alice Doe",
		Experience: []domain.ExperienceEntry{
			{Organization: "Acme", Role: "Engineer", Start: date(2020, time.January), Current: true},
		},
		Education: []domain.EducationEntry{
			{School: "State University", Degree: "BSc Computer Science"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.EmployeeID)
	assert.Equal(t, []int64{1}, first.ExperienceIDs)
	assert.Equal(t, []int64{1}, first.EducationIDs)

	second, err := store.Commit(ctx, &domain.PersonRecord{
		Name: "Bob Roe",
		Experience: []domain.ExperienceEntry{
			{Organization: "Globex", Role: "Analyst"},
			{Organization: "Globex", Role: "Senior Analyst"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.EmployeeID)
	assert.Equal(t, []int64{2, 3}, second.ExperienceIDs)
	assert.Empty(t, second.EducationIDs)
}

func TestStore_Commit_ReusesEmployeeByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Commit(ctx, &domain.PersonRecord{
		Name: "Alice Doe",
		Experience: []domain.ExperienceEntry{
			{Organization: "Acme", Role: "Engineer"},
		},
	})
	require.NoError(t, err)

	second, err := store.Commit(ctx, &domain.PersonRecord{
		Name: "Alice Doe",
		Experience: []domain.ExperienceEntry{
			{Organization: "Initech", Role: "Manager"},
		},
	})
	require.NoError(t, err)

	// Same employee row, new experience rows appended.
	assert.Equal(t, first.EmployeeID, second.EmployeeID)
	assert.NotEqual(t, first.ExperienceIDs, second.ExperienceIDs)

	exps, err := store.ListExperiences(ctx, first.EmployeeID)
	require.NoError(t, err)
	require.Len(t, exps, 2)
	assert.Equal(t, "Acme", exps[0].Organization)
	assert.Equal(t, "Initech", exps[1].Organization)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Employees)
	assert.Equal(t, int64(2), counts.Experiences)
	assert.Equal(t, int64(2), counts.EmployeeExperiences)
}

func TestStore_Commit_RejectsEmptyName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Commit(context.Background(), &domain.PersonRecord{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.Commit(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Commit_RoundTripsDates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	res, err := store.Commit(ctx, &domain.PersonRecord{
		Name: "Alice Doe",
		Experience: []domain.ExperienceEntry{
			{
				Organization: "Acme",
				Role:         "Engineer",
				Start:        date(2019, time.March),
				End:          date(2022, time.July),
				Location:     "Berlin, Germany",
			},
			{Organization: "Initech", Role: "Lead", Start: date(2022, time.August), Current: true},
		},
		Education: []domain.EducationEntry{
			{School: "State University", Degree: "BSc", Start: date(2015, time.September), End: date(2019, time.June)},
		},
	})
	require.NoError(t, err)

	exps, err := store.ListExperiences(ctx, res.EmployeeID)
	require.NoError(t, err)
	require.Len(t, exps, 2)

	assert.Equal(t, "Acme", exps[0].Organization)
	assert.Equal(t, "Engineer", exps[0].Role)
	require.NotNil(t, exps[0].Start)
	assert.Equal(t, *date(2019, time.March), exps[0].Start.UTC())
	require.NotNil(t, exps[0].End)
	assert.Equal(t, *date(2022, time.July), exps[0].End.UTC())
	assert.False(t, exps[0].Current)
	assert.Equal(t, "Berlin, Germany", exps[0].Location)

	assert.True(t, exps[1].Current)
	assert.Nil(t, exps[1].End)

	edus, err := store.ListEducations(ctx, res.EmployeeID)
	require.NoError(t, err)
	require.Len(t, edus, 1)
	assert.Equal(t, "State University", edus[0].School)
	assert.Equal(t, "BSc", edus[0].Degree)
	require.NotNil(t, edus[0].End)
	assert.Equal(t, *date(2019, time.June), edus[0].End.UTC())
}

func TestStore_FindEmployeeByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.FindEmployeeByName(ctx, "Alice Doe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := store.Commit(ctx, &domain.PersonRecord{Name: "Alice Doe"})
	require.NoError(t, err)

	emp, err := store.FindEmployeeByName(ctx, "Alice Doe")
	require.NoError(t, err)
	assert.Equal(t, res.EmployeeID, emp.ID)
	assert.Equal(t, "Alice Doe", emp.Name)

	// Exact match only.
	_, err = store.FindEmployeeByName(ctx, "alice doe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Commit(ctx, &domain.PersonRecord{
		Name:       "Alice Doe",
		Experience: []domain.ExperienceEntry{{Organization: "Acme", Role: "Engineer"}},
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	emp, err := reopened.FindEmployeeByName(ctx, "Alice Doe")
	require.NoError(t, err)

	res, err := reopened.Commit(ctx, &domain.PersonRecord{
		Name:       "Bob Roe",
		Experience: []domain.ExperienceEntry{{Organization: "Globex", Role: "Analyst"}},
	})
	require.NoError(t, err)

	// Allocation continues from the persisted maximum.
	assert.Equal(t, emp.ID+1, res.EmployeeID)
	assert.Equal(t, []int64{2}, res.ExperienceIDs)
}

func TestStore_Counts_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	counts, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.TableCounts{}, counts)
}
