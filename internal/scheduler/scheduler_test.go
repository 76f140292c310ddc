package scheduler_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockprobe "uptime/internal/probe/mock"
	"uptime/internal/scheduler"
	"uptime/pkg/domain"
	"uptime/pkg/logger"
	"uptime/pkg/serrors"
	"uptime/pkg/storage"
	mockstorage "uptime/pkg/storage/mock"
	"uptime/pkg/storage/sqldb"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type probeFunc func(ctx context.Context, d domain.Domain) (*domain.Examination, error)

func newMockProber(t *testing.T, fn probeFunc) *mockprobe.MockProber {
	t.Helper()

	p := mockprobe.NewMockProber(gomock.NewController(t))
	p.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(fn).AnyTimes()

	return p
}

func okExam(d domain.Domain) *domain.Examination {
	return &domain.Examination{
		DomainID:        d.ID,
		StatusCode:      http.StatusOK,
		ExaminationTime: time.Now(),
		ResponseTime:    5 * time.Millisecond,
	}
}

func newSQLite(t *testing.T, names ...string) (*sqldb.SQLDB, map[string]domain.Domain) {
	t.Helper()
	ctx := context.Background()

	db, err := sqldb.NewSQLite(ctx, sqldb.SQLiteOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Migrate(ctx)
	require.NoError(t, err)

	domains := make(map[string]domain.Domain, len(names))
	for _, name := range names {
		d, err := db.StoreDomain(ctx, domain.Domain{Name: name, Normalized: name})
		require.NoError(t, err)
		domains[name] = *d
	}

	return db, domains
}

func examinations(t *testing.T, db *sqldb.SQLDB, name string) []domain.Examination {
	t.Helper()

	detail, err := db.DomainWithExaminations(context.Background(), name)
	require.NoError(t, err)

	return detail.Examinations
}

func TestScheduler_Sweep_FailingProbeDoesNotAffectOthers(t *testing.T) {
	db, domains := newSQLite(t, "a.example", "b.example", "c.example")

	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		switch d.Name {
		case "b.example":
			exam := okExam(d)
			exam.StatusCode = domain.StatusUnreachable

			return exam, serrors.Wrap(serrors.ErrUnavailable, domain.ErrProbe, "connection refused")
		case "c.example":
			return nil, serrors.Wrap(serrors.ErrInternal, domain.ErrProbe, "negative response time")
		default:
			return okExam(d), nil
		}
	})

	s, err := scheduler.New(db, prober, scheduler.Options{})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Domains)
	require.Equal(t, 2, report.Recorded)
	require.Equal(t, 1, report.Unreachable)
	require.Equal(t, 1, report.Skipped)
	require.Zero(t, report.Failed)

	a := examinations(t, db, "a.example")
	require.Len(t, a, 1)
	require.Equal(t, http.StatusOK, a[0].StatusCode)
	require.Equal(t, domains["a.example"].ID, a[0].DomainID)

	b := examinations(t, db, "b.example")
	require.Len(t, b, 1)
	require.Equal(t, domain.StatusUnreachable, b[0].StatusCode)

	require.Empty(t, examinations(t, db, "c.example"))
}

func TestScheduler_Sweep_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Domains(gomock.Any()).Return([]domain.Domain{}, nil)

	// no probe and no write may happen
	s, err := scheduler.New(st, mockprobe.NewMockProber(ctrl), scheduler.Options{})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.SweepReport{Duration: report.Duration}, report)
}

func TestScheduler_Sweep_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	boom := errors.New("db down")
	st.EXPECT().Domains(gomock.Any()).Return(nil, boom)

	s, err := scheduler.New(st, mockprobe.NewMockProber(ctrl), scheduler.Options{})
	require.NoError(t, err)

	_, err = s.Sweep(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestScheduler_Sweep_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Domains(gomock.Any()).Return([]domain.Domain{
		{ID: 1, Name: "rejected.example"},
		{ID: 2, Name: "broken.example"},
	}, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			tx.EXPECT().StoreExamination(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e domain.Examination) (*domain.Examination, error) {
					if e.DomainID == 1 {
						return nil, serrors.Wrap(serrors.ErrInternal, domain.ErrExaminationCreate, "fk")
					}

					return nil, errors.New("disk full")
				})

			return cb(tx)
		}).Times(2)

	s, err := scheduler.New(st, newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		return okExam(d), nil
	}), scheduler.Options{})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Skipped)
	require.Equal(t, 1, report.Failed)
	require.Zero(t, report.Recorded)
}

func TestScheduler_Sweep_PanicIsIsolated(t *testing.T) {
	db, _ := newSQLite(t, "ok.example", "panics.example")

	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		if d.Name == "panics.example" {
			panic("boom")
		}

		return okExam(d), nil
	})

	s, err := scheduler.New(db, prober, scheduler.Options{})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Recorded)
	require.Equal(t, 1, report.Failed)
	require.Len(t, examinations(t, db, "ok.example"), 1)
}

func TestScheduler_Sweep_ProbesAllDomainsConcurrently(t *testing.T) {
	names := []string{"1.example", "2.example", "3.example", "4.example", "5.example"}
	db, _ := newSQLite(t, names...)

	// every probe blocks until all of them are in flight
	var arrived sync.WaitGroup
	arrived.Add(len(names))
	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		arrived.Done()
		waitOrFail(t, &arrived, 5*time.Second)

		return okExam(d), nil
	})

	s, err := scheduler.New(db, prober, scheduler.Options{})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(names), report.Recorded)
}

func TestScheduler_Sweep_MaxConcurrentProbes(t *testing.T) {
	db, _ := newSQLite(t, "1.example", "2.example", "3.example", "4.example", "5.example", "6.example")

	var inFlight, peak atomic.Int32
	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)

		return okExam(d), nil
	})

	s, err := scheduler.New(db, prober, scheduler.Options{MaxConcurrentProbes: 2})
	require.NoError(t, err)

	report, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, report.Recorded)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScheduler_StartStop_SweepsDoNotOverlap(t *testing.T) {
	db, _ := newSQLite(t, "slow.example")

	var (
		inFlight, peak atomic.Int32
		probes         atomic.Int32
	)
	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		if inFlight.Add(1) > 1 {
			peak.Store(2)
		}
		defer inFlight.Add(-1)
		probes.Add(1)
		// longer than the interval on purpose
		time.Sleep(30 * time.Millisecond)

		return okExam(d), nil
	})

	s, err := scheduler.New(db, prober, scheduler.Options{Interval: 5 * time.Millisecond})
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool { return probes.Load() >= 3 }, 5*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	require.Zero(t, inFlight.Load(), "stop must wait for the running sweep")
	require.Zero(t, peak.Load(), "sweeps overlapped")

	after := probes.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, after, probes.Load(), "no sweep may run after stop")
}

func TestScheduler_Start_SweepsImmediately(t *testing.T) {
	db, _ := newSQLite(t, "first.example")

	probed := make(chan struct{}, 1)
	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		select {
		case probed <- struct{}{}:
		default:
		}

		return okExam(d), nil
	})

	s, err := scheduler.New(db, prober, scheduler.Options{Interval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	select {
	case <-probed:
	case <-time.After(5 * time.Second):
		t.Fatal("first sweep did not start immediately")
	}
}

func TestScheduler_Start_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Domains(gomock.Any()).Return(nil, nil).AnyTimes()

	s, err := scheduler.New(st, mockprobe.NewMockProber(ctrl), scheduler.Options{Interval: time.Hour})
	require.NoError(t, err)

	require.ErrorIs(t, s.Stop(context.Background()), scheduler.ErrNotStarted)
	require.NoError(t, s.Start(context.Background()))
	require.ErrorIs(t, s.Start(context.Background()), scheduler.ErrAlreadyStarted)
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_Stop_InterruptedProbesAreNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Domains(gomock.Any()).Return([]domain.Domain{{ID: 1, Name: "hangs.example"}}, nil).AnyTimes()
	// no WithTx expectation: storing would fail the test

	started := make(chan struct{})
	prober := newMockProber(t, func(ctx context.Context, d domain.Domain) (*domain.Examination, error) {
		close(started)
		<-ctx.Done()

		exam := okExam(d)
		exam.StatusCode = domain.StatusUnreachable

		return exam, serrors.Wrap(serrors.ErrUnavailable, ctx.Err(), "canceled")
	})

	s, err := scheduler.New(st, prober, scheduler.Options{Interval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_Stop_BoundedByContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Domains(gomock.Any()).Return([]domain.Domain{{ID: 1, Name: "stuck.example"}}, nil).AnyTimes()

	release := make(chan struct{})
	started := make(chan struct{})
	prober := newMockProber(t, func(_ context.Context, d domain.Domain) (*domain.Examination, error) {
		close(started)
		// ignores cancellation
		<-release

		return nil, domain.ErrProbe
	})

	s, err := scheduler.New(st, prober, scheduler.Options{Interval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, s.Stop(context.Background()))
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Error("probes did not run concurrently")
	}
}
