package eval

// Marking policy. These are tuning knobs, not derived values; override via
// engine options when a deployment wants a different weighting.
const (
	// MethodMarkWeight caps the credit available for working steps when the
	// final answer is wrong, as a fraction of the question's marks.
	MethodMarkWeight = 0.7

	// DefaultMarks is assumed for questions that declare no mark value.
	DefaultMarks = 1
)
