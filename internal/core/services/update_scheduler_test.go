package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/highcard-dev/companion/internal/core/services"
	mock_ports "github.com/highcard-dev/companion/test/mock"
	"go.uber.org/mock/gomock"
)

func TestUpdateScheduler_RunsNonForcedChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_ports.NewMockUpdateCheckerInterface(ctrl)

	calls := make(chan struct{}, 16)
	checker.EXPECT().Check(gomock.Any(), false).Do(func(ctx context.Context, force bool) {
		calls <- struct{}{}
	}).MinTimes(2)

	scheduler := services.NewUpdateScheduler(checker, 20*time.Millisecond)
	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer scheduler.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("Expected check number %d to run", i+1)
		}
	}
}

func TestUpdateScheduler_NoChecksAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_ports.NewMockUpdateCheckerInterface(ctrl)

	var stopped atomic.Bool
	var lateCalls atomic.Int32
	checker.EXPECT().Check(gomock.Any(), false).Do(func(ctx context.Context, force bool) {
		if stopped.Load() {
			lateCalls.Add(1)
		}
	}).AnyTimes()

	scheduler := services.NewUpdateScheduler(checker, 10*time.Millisecond)
	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	scheduler.Stop()
	stopped.Store(true)

	if scheduler.IsRunning() {
		t.Error("Expected scheduler not to be running after Stop")
	}

	time.Sleep(50 * time.Millisecond)
	if n := lateCalls.Load(); n != 0 {
		t.Errorf("Expected no checks after Stop, got %d", n)
	}
}

func TestUpdateScheduler_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_ports.NewMockUpdateCheckerInterface(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// cancelled before the first tick: the job must not reach the checker
	checker.EXPECT().Check(gomock.Any(), gomock.Any()).Times(0)

	scheduler := services.NewUpdateScheduler(checker, 10*time.Millisecond)
	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	scheduler.Stop()
}

func TestUpdateScheduler_StartErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_ports.NewMockUpdateCheckerInterface(ctrl)
	checker.EXPECT().Check(gomock.Any(), gomock.Any()).AnyTimes()

	if err := services.NewUpdateScheduler(checker, 0).Start(context.Background()); !errors.Is(err, services.ErrInvalidInterval) {
		t.Errorf("Expected %v, got %v", services.ErrInvalidInterval, err)
	}

	scheduler := services.NewUpdateScheduler(checker, time.Hour)
	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer scheduler.Stop()

	if err := scheduler.Start(context.Background()); !errors.Is(err, services.ErrSchedulerRunning) {
		t.Errorf("Expected %v, got %v", services.ErrSchedulerRunning, err)
	}
	if !scheduler.IsRunning() {
		t.Error("Expected scheduler to be running")
	}
}

func TestUpdateScheduler_StopLetsRunningCheckFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_ports.NewMockUpdateCheckerInterface(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	ctxErr := make(chan error, 1)
	checker.EXPECT().Check(gomock.Any(), false).DoAndReturn(func(ctx context.Context, force bool) {
		close(started)
		<-release
		ctxErr <- ctx.Err()
	}).Times(1)

	scheduler := services.NewUpdateScheduler(checker, time.Hour)
	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the first check to run")
	}

	stopped := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Expected Stop to wait for the running check")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)

	if err := <-ctxErr; err != nil {
		t.Errorf("Expected the running check to keep a live context, got %v", err)
	}
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Stop to return after the check finished")
	}
}
