package pipe

// ResolveOutcome classifies what a Pipe rendered.
type ResolveOutcome string

const (
	ResolvedContinuation ResolveOutcome = "continuation"
	ResolvedTerminal     ResolveOutcome = "terminal"
	ResolvedEmpty        ResolveOutcome = "empty"
	ResolvedUnbound      ResolveOutcome = "unbound"
)

// Recorder receives chain construction and resolution events.
// Implementations must be safe for concurrent use.
type Recorder interface {
	IncChainBuilt(variant Variant)
	ObserveChainLength(variant Variant, n int)
	IncPipeResolved(outcome ResolveOutcome)
}

// NoopRecorder is the default Recorder.
type NoopRecorder struct{}

func (NoopRecorder) IncChainBuilt(Variant)           {}
func (NoopRecorder) ObserveChainLength(Variant, int) {}
func (NoopRecorder) IncPipeResolved(ResolveOutcome)  {}
