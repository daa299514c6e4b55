package lock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`lock acquired and safe code runs`, func(t *testing.T) {
		ran := false
		ok, err := WithDelay(context.TODO(), "app-1", time.Second, func() error {
			ran = true
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, true, ok)
		require.Equal(t, true, ran)
	})

	t.Run(`second caller waits for the holder`, func(t *testing.T) {
		var order int32
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.TODO(), "app-2", time.Second, func() error {
				atomic.StoreInt32(&order, 1)
				<-release
				return nil
			})
			close(done)
		}()
		for atomic.LoadInt32(&order) == 0 {
			time.Sleep(time.Millisecond)
		}
		go func() {
			time.Sleep(100 * time.Millisecond)
			close(release)
		}()
		ok, err := WithDelay(context.TODO(), "app-2", 2*time.Second, func() error {
			require.Equal(t, int32(1), atomic.LoadInt32(&order))
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, true, ok)
		<-done
	})

	t.Run(`wait timeout gives up without running`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.TODO(), "app-3", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.TODO(), "app-3", 100*time.Millisecond, func() error {
			t.Fatal("must not run while the lock is held")
			return nil
		})
		close(release)
		require.Nil(t, err)
		require.Equal(t, false, ok)
	})
}
