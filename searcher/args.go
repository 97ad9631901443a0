package searcher

type Option func(s *settings)

type settings struct {
	metrics       Collector
	singleTracker bool
}

func newSettings(options []Option) settings {
	s := settings{metrics: NewDummyCollector()}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithMetrics records node counts and timings of every search in collector.
func WithMetrics(collector Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// WithSingleTracker makes alpha-beta record the best column only when a child
// strictly improves the best score, instead of also on every alpha (or beta)
// update.
func WithSingleTracker() Option {
	return func(s *settings) {
		s.singleTracker = true
	}
}
