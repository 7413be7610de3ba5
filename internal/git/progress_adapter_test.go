package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbicker/dugite-extra/internal/git"
)

func TestProgressAdapter(t *testing.T) {
	t.Run("delivers the synthetic start event then one event per parsed line", func(t *testing.T) {
		var events []git.ProgressEvent
		callback := func(e git.ProgressEvent) { events = append(events, e) }

		// Two-step protocol: the caller emits the start event before
		// attaching the adapter to the stream.
		callback(git.CheckoutStartEvent("feature"))

		adapter := git.NewCheckoutProgressAdapter("feature", callback)
		chunk := []byte("Checking out files: 10% (1/10)\nChecking out files: 100% (10/10)\n")
		n, err := adapter.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
		require.NoError(t, adapter.Close())

		require.Len(t, events, 3)
		require.Zero(t, events[0].Value)
		require.InDelta(t, 0.1, events[1].Value, 0.0001)
		require.InDelta(t, 1.0, events[2].Value, 0.0001)
	})

	t.Run("start event carries kind and title but no description", func(t *testing.T) {
		event := git.CheckoutStartEvent("feature")

		require.Equal(t, "checkout", event.Kind)
		require.NotEmpty(t, event.Title)
		require.Empty(t, event.Description)
		require.Zero(t, event.Value)
		require.Equal(t, "feature", event.TargetBranch)
	})

	t.Run("checkout events carry the target branch and parsed text", func(t *testing.T) {
		var events []git.ProgressEvent
		adapter := git.NewCheckoutProgressAdapter("feature", func(e git.ProgressEvent) {
			events = append(events, e)
		})

		_, err := adapter.Write([]byte("Checking out files: 42% (420/1000)\n"))
		require.NoError(t, err)

		require.Len(t, events, 1)
		require.Equal(t, "checkout", events[0].Kind)
		require.Equal(t, "feature", events[0].TargetBranch)
		require.Equal(t, "Checking out files: 42% (420/1000)", events[0].Description)
		require.InDelta(t, 0.42, events[0].Value, 0.0001)
	})

	t.Run("clone events carry no target branch", func(t *testing.T) {
		var events []git.ProgressEvent
		adapter := git.NewCloneProgressAdapter(func(e git.ProgressEvent) {
			events = append(events, e)
		})

		_, err := adapter.Write([]byte("Receiving objects: 50% (50/100)\n"))
		require.NoError(t, err)

		require.Len(t, events, 1)
		require.Equal(t, "clone", events[0].Kind)
		require.Empty(t, events[0].TargetBranch)
	})

	t.Run("unmatched lines produce no callback invocation", func(t *testing.T) {
		calls := 0
		adapter := git.NewCheckoutProgressAdapter("feature", func(git.ProgressEvent) {
			calls++
		})

		chunk := []byte("Switched to branch 'feature'\nYour branch is up to date.\n")
		n, err := adapter.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
		require.NoError(t, adapter.Close())
		require.Zero(t, calls)
	})

	t.Run("write never fails even when nothing matches", func(t *testing.T) {
		adapter := git.NewCheckoutProgressAdapter("feature", func(git.ProgressEvent) {})

		chunk := []byte("warning: unable to rmdir something\n")
		n, err := adapter.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	})

	t.Run("close flushes a buffered partial line", func(t *testing.T) {
		var events []git.ProgressEvent
		adapter := git.NewCheckoutProgressAdapter("feature", func(e git.ProgressEvent) {
			events = append(events, e)
		})

		_, err := adapter.Write([]byte("Checking out files: 90% (9/10)"))
		require.NoError(t, err)
		require.Empty(t, events)

		require.NoError(t, adapter.Close())
		require.Len(t, events, 1)
		require.InDelta(t, 0.9, events[0].Value, 0.0001)
	})

	t.Run("events arrive in receipt order across chunk boundaries", func(t *testing.T) {
		var values []float64
		adapter := git.NewCloneProgressAdapter(func(e git.ProgressEvent) {
			values = append(values, e.Value)
		})

		_, err := adapter.Write([]byte("Receiving objects: 25% (25/"))
		require.NoError(t, err)
		_, err = adapter.Write([]byte("100)\nResolving deltas: 10% (5/50)\n"))
		require.NoError(t, err)

		require.Len(t, values, 2)
		require.InDelta(t, 0.25, values[0], 0.0001)
		require.InDelta(t, 0.10, values[1], 0.0001)
	})

	t.Run("a panicking callback propagates to the caller", func(t *testing.T) {
		// The adapter does not recover for the consumer; a broken callback
		// surfaces on the goroutine draining the stream.
		adapter := git.NewCloneProgressAdapter(func(git.ProgressEvent) {
			panic("consumer failure")
		})

		require.PanicsWithValue(t, "consumer failure", func() {
			_, _ = adapter.Write([]byte("Receiving objects: 10% (10/100)\n"))
		})
	})
}
