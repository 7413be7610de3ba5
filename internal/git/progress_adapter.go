package git

// ProgressEvent is the caller-facing notification derived from a progress
// record plus static operation metadata. Events are never mutated after
// construction.
type ProgressEvent struct {
	// Kind identifies the operation, e.g. "checkout" or "clone".
	Kind string
	// Title is the static, human-readable description of the operation.
	Title string
	// Description is the latest parsed output line, empty for the
	// synthetic start event.
	Description string
	// Value is the completion fraction in [0, 1].
	Value float64
	// TargetBranch is set for checkout events.
	TargetBranch string
}

// ProgressCallback receives progress events for a single operation. Events
// are dispatched synchronously and in order on the goroutine draining the
// process output; no two events for the same operation are delivered
// concurrently. A panicking callback ends progress reporting for the
// operation but does not abort the git process already in flight.
type ProgressCallback func(ProgressEvent)

// ProgressAdapter bridges a running git command's output stream to a
// caller-supplied callback. It implements io.Writer so it can be attached
// directly to the command's stderr via CommandRunner.RunStreaming.
//
// The synthetic start event is the caller's responsibility: invoke the
// callback with CheckoutStartEvent or CloneStartEvent before attaching the
// adapter, so consumers see the operation begin even if git never produces
// a matching line.
type ProgressAdapter struct {
	parser     *ProgressParser
	mapRecord  func(ProgressRecord) ProgressEvent
	onProgress ProgressCallback
}

// NewProgressAdapter creates an adapter that feeds each chunk to the parser
// and maps every parsed record through mapRecord before invoking onProgress.
func NewProgressAdapter(mapRecord func(ProgressRecord) ProgressEvent, onProgress ProgressCallback) *ProgressAdapter {
	return &ProgressAdapter{
		parser:     NewProgressParser(),
		mapRecord:  mapRecord,
		onProgress: onProgress,
	}
}

// NewCheckoutProgressAdapter creates an adapter that emits "checkout" events
// carrying the target branch name.
func NewCheckoutProgressAdapter(targetBranch string, onProgress ProgressCallback) *ProgressAdapter {
	return NewProgressAdapter(func(record ProgressRecord) ProgressEvent {
		return ProgressEvent{
			Kind:         "checkout",
			Title:        checkoutProgressTitle,
			Description:  record.Text,
			Value:        record.Percent,
			TargetBranch: targetBranch,
		}
	}, onProgress)
}

// NewCloneProgressAdapter creates an adapter that emits "clone" events.
func NewCloneProgressAdapter(onProgress ProgressCallback) *ProgressAdapter {
	return NewProgressAdapter(func(record ProgressRecord) ProgressEvent {
		return ProgressEvent{
			Kind:        "clone",
			Title:       cloneProgressTitle,
			Description: record.Text,
			Value:       record.Percent,
		}
	}, onProgress)
}

const (
	checkoutProgressTitle = "Checking out branch"
	cloneProgressTitle    = "Cloning repository"
)

// CheckoutStartEvent returns the synthetic zero-progress event for a
// checkout operation.
func CheckoutStartEvent(targetBranch string) ProgressEvent {
	return ProgressEvent{
		Kind:         "checkout",
		Title:        checkoutProgressTitle,
		Value:        0,
		TargetBranch: targetBranch,
	}
}

// CloneStartEvent returns the synthetic zero-progress event for a clone
// operation.
func CloneStartEvent() ProgressEvent {
	return ProgressEvent{
		Kind:  "clone",
		Title: cloneProgressTitle,
		Value: 0,
	}
}

// Write feeds a chunk of process output to the parser and dispatches one
// callback invocation per parsed record, in receipt order. It always
// reports the full chunk as consumed and never returns an error, so the
// process pipe keeps draining regardless of what the consumer does with
// the events.
func (a *ProgressAdapter) Write(p []byte) (int, error) {
	for _, record := range a.parser.Parse(string(p)) {
		a.onProgress(a.mapRecord(record))
	}
	return len(p), nil
}

// Close flushes any buffered partial line. The adapter is finished after
// Close regardless of whether the underlying operation succeeded; progress
// reporting and operation outcome are independent signals.
func (a *ProgressAdapter) Close() error {
	for _, record := range a.parser.Flush() {
		a.onProgress(a.mapRecord(record))
	}
	return nil
}
