package combat

//go:generate go tool mockgen -destination=mocks/sink_mock.go -package=mocks arenasim/internal/combat Sink

// Sink receives every event as it is emitted, in order.
type Sink interface {
	Publish(ev Event)
}

type SinkFunc func(ev Event)

func (f SinkFunc) Publish(ev Event) { f(ev) }
