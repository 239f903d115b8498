// Package notify доставляет уведомления юзерам. Доставка не блокирует вызывающий код, ошибки каналов
// пишутся в лог и не влияют на результат бизнес-операций.
package notify

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/logger"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize      = 1024
	defaultDeliverTimeout = 10 * time.Second
	drainTimeout          = 5 * time.Second
)

// Dispatcher раздает события по каналам доставки из одной очереди.
type Dispatcher struct {
	queue          chan domain.NotificationEvent
	sinks          []Sink
	l              *logrus.Entry
	deliverTimeout time.Duration
}

func NewDispatcher(l *logrus.Logger, queueSize int, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		queue: make(chan domain.NotificationEvent, queueSize),
		sinks: sinks,
		l: logger.Component(l, "notify", "dispatcher"),
		deliverTimeout: defaultDeliverTimeout,
	}
}

// Notify ставит событие в очередь. Если очередь заполнена, событие отбрасывается.
func (d *Dispatcher) Notify(_ context.Context, event domain.NotificationEvent) {
	select {
	case d.queue <- event:
	default:
		d.l.WithFields(logrus.Fields{
			"userID": event.UserID,
			"type":   event.Type,
		}).Warn("notification queue is full, event dropped")
	}
}

// Run доставляет события до отмены контекста. После отмены доставляет то, что осталось в очереди.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithField("sinks", len(d.sinks)).Info("Starting")
	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx))
			d.l.Info("Got stop signal, exiting...")
			return
		case event := <-d.queue:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	for {
		select {
		case event := <-d.queue:
			d.deliver(ctx, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.NotificationEvent) {
	for _, sink := range d.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, d.deliverTimeout)
		err := sink.Deliver(sinkCtx, event)
		cancel()
		if err != nil {
			d.l.WithError(err).WithFields(logrus.Fields{
				"sink":    sink.Name(),
				"userID":  event.UserID,
				"type":    event.Type,
				"outcome": domain.OutcomeDependency,
			}).Warn("deliver notification")
		}
	}
}
