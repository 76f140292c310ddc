package sqldb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uptime/pkg/domain"
	"uptime/pkg/storage/sqldb"
)

func TestSQLDB_StoreExamination(t *testing.T) {
	forEachBackend(t, func(t *testing.T, db *sqldb.SQLDB) {
		ctx := context.Background()
		d := storeDomain(t, db, "https://example.com", "example.com")
		now := time.Now().UTC().Truncate(time.Microsecond)

		t.Run("reachable", func(t *testing.T) {
			exam, err := db.StoreExamination(ctx, domain.Examination{
				DomainID:        d.ID,
				StatusCode:      200,
				ExaminationTime: now,
				ResponseTime:    123456789 * time.Nanosecond,
			})
			require.NoError(t, err)
			require.Positive(t, exam.ID)
			require.Equal(t, d.ID, exam.DomainID)
			require.Equal(t, 123456789*time.Nanosecond, exam.ResponseTime)
			require.True(t, exam.ExaminationTime.Equal(now))
		})

		t.Run("unreachable", func(t *testing.T) {
			exam, err := db.StoreExamination(ctx, domain.Examination{
				DomainID:        d.ID,
				StatusCode:      domain.StatusUnreachable,
				ExaminationTime: now,
				ResponseTime:    0,
			})
			require.NoError(t, err)
			require.False(t, exam.Reachable())
		})

		t.Run("negative duration", func(t *testing.T) {
			_, err := db.StoreExamination(ctx, domain.Examination{
				DomainID:        d.ID,
				StatusCode:      200,
				ExaminationTime: now,
				ResponseTime:    -time.Millisecond,
			})
			require.ErrorIs(t, err, domain.ErrExaminationCreate)
		})

		t.Run("unknown domain", func(t *testing.T) {
			_, err := db.StoreExamination(ctx, domain.Examination{
				DomainID:        d.ID + 1000,
				StatusCode:      200,
				ExaminationTime: now,
			})
			require.ErrorIs(t, err, domain.ErrExaminationCreate)
		})

		detail, err := db.DomainWithExaminations(ctx, "example.com")
		require.NoError(t, err)
		require.Len(t, detail.Examinations, 2)
	})
}

func TestSQLDB_StoreExamination_CheckConstraint(t *testing.T) {
	forEachBackend(t, func(t *testing.T, db *sqldb.SQLDB) {
		ctx := context.Background()
		d := storeDomain(t, db, "https://example.com", "example.com")

		// bypass Validate to make sure the schema enforces the same rule
		_, err := db.Builder.Insert("examinations").Rows(sqldb.SQLExamination{
			DomainID:        int64(d.ID),
			StatusCode:      200,
			ExaminationTime: time.Now().UTC(),
			ResponseTimeNS:  -1,
		}).Executor().ExecContext(ctx)
		require.Error(t, err)
	})
}
