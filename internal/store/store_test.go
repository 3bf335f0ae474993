package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistenciapp/backend/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	return New(backend), dir
}

func TestLoadEmployeesSeedsOnFirstUse(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	employees, err := s.LoadEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 6)
	assert.Equal(t, "1", employees[0].ID)
	assert.Equal(t, "Carlos Rodríguez", employees[0].Name)
	assert.Equal(t, "EMP006", employees[5].EmployeeNumber)

	// Seeding persists: the document now exists on disk and a second load
	// returns the same roster without reseeding.
	_, err = os.Stat(filepath.Join(dir, KeyEmployees+".json"))
	require.NoError(t, err)

	again, err := s.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, employees, again)
}

func TestLoadRecordsEmptyWithoutSeeding(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Unlike the roster, records are never seeded.
	_, err = os.Stat(filepath.Join(dir, KeyRecords+".json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRosterRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	roster := []domain.Employee{
		{ID: "a", Name: "Núria Vidal", EmployeeNumber: "EMP009", Department: "Ventas", Avatar: "https://example.test/a.png"},
		{ID: "b", Name: "José Pérez", EmployeeNumber: "EMP010", Department: "Logística", Avatar: "https://example.test/b.png"},
	}
	require.NoError(t, s.SaveEmployees(ctx, roster))

	got, err := s.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestRecordsRoundTripKeepsInstant(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	loc := time.FixedZone("UTC-6", -6*60*60)
	records := []domain.AttendanceRecord{
		{ID: "r1", EmployeeID: "1", Timestamp: time.Date(2026, 2, 10, 9, 14, 30, 0, loc)},
		{ID: "r2", EmployeeID: "2", Timestamp: time.Date(2026, 2, 10, 9, 40, 0, 0, time.UTC)},
	}
	require.NoError(t, s.SaveRecords(ctx, records))

	got, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range records {
		assert.Equal(t, records[i].ID, got[i].ID)
		assert.Equal(t, records[i].EmployeeID, got[i].EmployeeID)
		// Same instant and same wall clock: the offset survives the trip,
		// which the lateness rule depends on.
		assert.True(t, records[i].Timestamp.Equal(got[i].Timestamp))
		assert.Equal(t, records[i].Timestamp.Hour(), got[i].Timestamp.Hour())
		assert.Equal(t, records[i].Timestamp.Minute(), got[i].Timestamp.Minute())
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveRecords(ctx, []domain.AttendanceRecord{
		{ID: "r1", EmployeeID: "1", Timestamp: time.Now()},
		{ID: "r2", EmployeeID: "1", Timestamp: time.Now()},
	}))
	require.NoError(t, s.SaveRecords(ctx, []domain.AttendanceRecord{
		{ID: "r3", EmployeeID: "2", Timestamp: time.Now()},
	}))

	got, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r3", got[0].ID)
}

func TestCorruptDocumentFailsFast(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyEmployees+".json"), []byte("{not json"), 0664))
	_, err := s.LoadEmployees(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt roster")

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyRecords+".json"), []byte("[{]"), 0664))
	_, err = s.LoadRecords(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt record log")
}

func TestDefaultRosterReturnsFreshSlice(t *testing.T) {
	a := DefaultRoster()
	a[0].Name = "mutated"
	b := DefaultRoster()
	assert.Equal(t, "Carlos Rodríguez", b[0].Name)
}
