// Package extractor pulls form fields out of free text or structured client
// submissions.
package extractor

// Strategy names reported by Matched.
const (
	StrategyPipe      = "pipe"
	StrategyJSON      = "json"
	StrategyHeuristic = "heuristic"
)

// Strategy turns a query into field values. An empty result means the
// strategy does not apply and the next one is tried.
type Strategy interface {
	Name() string
	Parse(query string) map[string]string
}

// Recognizer is implemented by strategies that can tell their input format
// apart from prose even when it carries no usable value.
type Recognizer interface {
	Recognizes(query string) bool
}

// Extractor runs its strategies in order; the first non-empty result wins.
type Extractor struct {
	strategies []Strategy
}

// New returns the default chain: pipe pairs, JSON object, then heuristics.
func New() *Extractor {
	return NewWithStrategies(PipeStrategy{}, JSONStrategy{}, HeuristicStrategy{})
}

// NewWithStrategies builds an extractor with a custom chain.
func NewWithStrategies(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract never panics and never returns nil.
func (e *Extractor) Extract(query string) map[string]string {
	for _, s := range e.strategies {
		if fields := safeParse(s, query); len(fields) > 0 {
			return fields
		}
	}
	return map[string]string{}
}

// Matched is like Extract but also names the strategy that produced the
// result. When nothing was extracted it names the first Recognizer that
// claims the query, so an empty widget submission is still reported as one.
func (e *Extractor) Matched(query string) (map[string]string, string) {
	for _, s := range e.strategies {
		if fields := safeParse(s, query); len(fields) > 0 {
			return fields, s.Name()
		}
	}
	for _, s := range e.strategies {
		if r, ok := s.(Recognizer); ok && safeRecognizes(r, query) {
			return map[string]string{}, s.Name()
		}
	}
	return map[string]string{}, ""
}

func safeParse(s Strategy, query string) (fields map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
		}
	}()
	return s.Parse(query)
}

func safeRecognizes(r Recognizer, query string) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
		}
	}()
	return r.Recognizes(query)
}

// MergeWithState overlays parsed on existing. Keys in parsed always win, even
// over values confirmed in an earlier turn.
func MergeWithState(existing, parsed map[string]string) map[string]string {
	out := make(map[string]string, len(existing)+len(parsed))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range parsed {
		out[k] = v
	}
	return out
}
