package notify

import "go.uber.org/zap"

// Sink recebe eventos já fora do caminho crítico da requisição.
type Sink interface {
	Publish(ev AppointmentStatusChanged)
}

// Dispatcher desacopla a emissão do evento da entrega: fila em memória,
// melhor esforço, descarte quando cheia. O chamador nunca espera.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan AppointmentStatusChanged
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan AppointmentStatusChanged, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.sink.Publish(ev)
	}
}

func (d *Dispatcher) Dispatch(ev AppointmentStatusChanged) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event",
			zap.Uint("appointment_id", ev.AppointmentID),
		)
	}
}
