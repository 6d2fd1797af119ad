package db

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow is one scripted result row for fakeRows.
type fakeRow struct {
	id             uuid.UUID
	name           string
	email          string
	phone          string
	skills         []byte
	experienceJSON []byte
	educationJSON  []byte
	summary        string
	createdAt      time.Time
}

// fakeRows implements pgx.Rows over scripted rows, optionally failing
// iteration after the last row is consumed.
type fakeRows struct {
	rows    []fakeRow
	pos     int
	iterErr error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.pos-1]
	*dest[0].(*uuid.UUID) = row.id
	*dest[1].(*string) = row.name
	*dest[2].(*string) = row.email
	*dest[3].(*string) = row.phone
	if err := dest[4].(*StringArray).Scan(row.skills); err != nil {
		return err
	}
	*dest[5].(*[]byte) = row.experienceJSON
	*dest[6].(*[]byte) = row.educationJSON
	*dest[7].(*string) = row.summary
	*dest[8].(*time.Time) = row.createdAt
	return nil
}

func (f *fakeRows) Err() error {
	if f.pos >= len(f.rows) {
		return f.iterErr
	}
	return nil
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func TestScanCandidates(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		{
			id:             uuid.New(),
			name:           "Jane Doe",
			email:          "jane@example.com",
			phone:          "+2348012345678",
			skills:         []byte(`["Go","PostgreSQL"]`),
			experienceJSON: []byte(`[{"title":"Engineer","company":"Flutterwave","duration":"2021 - 2024","description":"Payments."}]`),
			educationJSON:  []byte(`[{"degree":"BSc","institution":"University of Lagos","year":"2020"}]`),
			summary:        "Backend engineer.",
			createdAt:      time.Now(),
		},
	}}

	candidates, err := scanCandidates(rows)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Jane Doe", candidates[0].Name)
	assert.Equal(t, StringArray{"Go", "PostgreSQL"}, candidates[0].Skills)
	require.Len(t, candidates[0].Experience, 1)
	assert.Equal(t, "Flutterwave", candidates[0].Experience[0].Company)
}

func TestScanCandidates_IterationErrorDiscardsPartialList(t *testing.T) {
	rows := &fakeRows{
		rows: []fakeRow{
			{
				id:     uuid.New(),
				name:   "Jane Doe",
				email:  "jane@example.com",
				skills: []byte(`["Go"]`),
			},
		},
		iterErr: errors.New("connection reset"),
	}

	candidates, err := scanCandidates(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list candidates")
	assert.Nil(t, candidates)
}

func TestScanCandidates_BadStoredJSON(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		{
			id:             uuid.New(),
			name:           "Jane Doe",
			email:          "jane@example.com",
			skills:         []byte(`["Go"]`),
			experienceJSON: []byte(`not-json`),
		},
	}}

	_, err := scanCandidates(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode experience")
}
