// Package payoutjob периодически генерирует ежемесячные выплаты по вложениям.
package payoutjob

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/logger"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultBatch          uint = 100
	defaultWorkers        uint = 5
	defaultInterval            = 24 * time.Hour
)

// Processor генерирует выплаты по вложениям, срок выплаты которых наступил.
type Processor struct {
	svs      Servicer
	locker   Locker
	l        *logrus.Entry
	batch    uint
	workers  uint
	interval time.Duration
}

// New создает новый экземпляр генератора выплат. Без Locker генерация не защищена от параллельного запуска
// в нескольких экземплярах, но остается корректной за счет уникальности выплаты за период.
func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := logger.Component(l, "payoutjob", "processor")

	return &Processor{
		svs:      svs,
		l:        loggerEntry,
		batch:    defaultBatch,
		workers:  defaultWorkers,
		interval: defaultInterval,
	}
}

// SetBatch устанавливает кол-во вложений, читаемых за одну итерацию.
func (p *Processor) SetBatch(batch uint) *Processor {
	if batch > 0 {
		p.batch = batch
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, генерирующих выплаты.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetInterval устанавливает период запуска генерации.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

func (p *Processor) SetLocker(locker Locker) *Processor {
	p.locker = locker
	return p
}

type Report struct {
	Generated int
	Skipped   int
	Failed    int
}

// Run запускает генерацию сразу и далее раз в interval до отмены контекста.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"batch":    p.batch,
		"workers":  p.workers,
		"interval": p.interval.String(),
	}).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			p.runAndLog(ctx)
		}
	}
}

func (p *Processor) runAndLog(ctx context.Context) {
	report, err := p.RunOnce(ctx)
	switch {
	case errors.Is(err, ErrLocked):
		p.l.Debug("generation is running on another instance")
	case err != nil:
		p.l.WithError(err).Error("generate payouts")
	default:
		p.l.WithFields(logrus.Fields{
			"generated": report.Generated,
			"skipped":   report.Skipped,
			"failed":    report.Failed,
		}).Info("payouts generated")
	}
}

// RunOnce выполняет один проход генерации:
//  1. захватывает блокировку, если задан Locker;
//  2. читает вложения, срок выплаты по которым наступил, порциями по batch с продолжением после последнего id;
//  3. каждую порцию обрабатывают workers воркеров, каждое вложение обрабатывается в своей транзакции.
//
// Выплата, уже созданная за период, и вложение, вышедшее из срока блокировки, считаются пропущенными.
func (p *Processor) RunOnce(ctx context.Context) (*Report, error) {
	if p.locker != nil {
		unlock, lockErr := p.locker.Lock(ctx)
		if lockErr != nil {
			return nil, fmt.Errorf("run once: %w", lockErr)
		}
		defer func() {
			if unlockErr := unlock(context.WithoutCancel(ctx)); unlockErr != nil {
				p.l.WithError(unlockErr).Warn("release lock")
			}
		}()
	}

	asOf := p.svs.Now()
	report := new(Report)
	var afterID int64
	for {
		holdings, err := p.produce(ctx, asOf, afterID)
		if err != nil {
			return report, err
		}
		if len(holdings) == 0 {
			return report, nil
		}

		for _, result := range p.runWorkers(ctx, asOf, holdings) {
			switch {
			case result.Error == nil:
				report.Generated++
			case isSkip(result.Error):
				report.Skipped++
			default:
				report.Failed++
				p.l.WithError(result.Error).WithFields(logrus.Fields{
					"worker":    result.WorkerID,
					"holdingID": result.HoldingID,
				}).Error("generate payout for holding")
			}
		}

		if uint(len(holdings)) < p.batch {
			return report, nil
		}
		afterID = holdings[len(holdings)-1].ID
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr //nolint:wrapcheck
		}
	}
}

func isSkip(err error) bool {
	return errors.Is(err, domain.ErrPayoutExists) ||
		errors.Is(err, domain.ErrInvalidState) ||
		errors.Is(err, domain.ErrAlreadyProcessed)
}

// workerResult результат генерации выплаты по одному вложению.
type workerResult struct {
	WorkerID  uint
	HoldingID int64
	Payout    *domain.Payout
	Error     error
}

// runWorkers запускает параллельных воркеров и ожидает конца их работы (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, asOf time.Time, holdings []domain.Holding) []workerResult {
	var taskCh = make(chan int64, len(holdings))
	for _, holding := range holdings {
		taskCh <- holding.ID
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan workerResult, len(holdings))
	for i := range p.workers {
		go p.worker(ctx, wg, i+1, asOf, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(holdings))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	asOf time.Time,
	taskCh <-chan int64,
	resultCh chan<- workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case holdingID, ok := <-taskCh:
			if !ok {
				return
			}
			reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
			payout, err := p.svs.GenerateForHolding(reqCtx, holdingID, asOf)
			cancel()
			resultCh <- workerResult{WorkerID: workerID, HoldingID: holdingID, Payout: payout, Error: err}
		}
	}
}

// produce получает порцию вложений для генерации.
func (p *Processor) produce(ctx context.Context, asOf time.Time, afterID int64) ([]domain.Holding, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	holdings, err := p.svs.DueHoldings(produceCtx, asOf, afterID, p.batch)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	return holdings, nil
}
