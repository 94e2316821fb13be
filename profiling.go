package framehost

// AllocSummary aggregates the samples an AllocTracker took while enabled.
type AllocSummary struct {
	Frames   uint64 // Frames sampled
	Mallocs  uint64 // Heap objects allocated across sampled frames
	Frees    uint64 // Heap objects freed across sampled frames
	Bytes    uint64 // Bytes allocated across sampled frames
	PeakHeap uint64 // Largest live heap seen
	PeakRSS  uint64 // Largest resident set seen, 0 if unavailable
}

// AllocTracker is an opt-in allocation profiler. The engine calls FrameDone
// after each presented frame while the tracker is enabled and binds
// ActionToggleProfiler to Toggle.
type AllocTracker interface {
	Enabled() bool
	// Toggle flips the enabled state and returns the new state.
	Toggle() bool
	FrameDone()
	Summary() AllocSummary
}
