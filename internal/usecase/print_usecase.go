package usecase

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/google/uuid"
)

const (
	backgroundTimeout = 2 * time.Second
	logoTimeout       = 3 * time.Second
)

// PrintUseCase принимает заказ из веб-панели, формирует чек и отправляет команды на принтер.
// Ошибки вызывающему не возвращаются: всё логируется и фиксируется в истории заданий.
type PrintUseCase struct {
	parser   OrderParser
	builder  ReceiptBuilder
	logo     LogoProvider
	jobRepo  PrintJobRepository
	journal  JobResultRepository
	producer EventProducer
	logger   logger.Logger

	mu     sync.RWMutex
	device PrinterDevice

	bgMu   sync.Mutex
	closed bool // после WaitForBackground новые фоновые записи отбрасываются
	wg     sync.WaitGroup
}

func NewPrintUC(
	parser OrderParser,
	builder ReceiptBuilder,
	logo LogoProvider,
	jobRepo PrintJobRepository,
	journal JobResultRepository,
	producer EventProducer,
	logger logger.Logger,
) *PrintUseCase {
	return &PrintUseCase{
		parser:   parser,
		builder:  builder,
		logo:     logo,
		jobRepo:  jobRepo,
		journal:  journal,
		producer: producer,
		logger:   logger,
	}
}

// OnConnected запоминает подключённое устройство.
func (p *PrintUseCase) OnConnected(device PrinterDevice) {
	p.mu.Lock()
	p.device = device
	p.mu.Unlock()

	p.logger.Infof("Printer service connected")
}

// OnDisconnected сбрасывает устройство. Следующие задания будут отклонены до переподключения.
func (p *PrintUseCase) OnDisconnected() {
	p.mu.Lock()
	p.device = nil
	p.mu.Unlock()

	p.logger.Warnf("Printer service disconnected")
}

func (p *PrintUseCase) currentDevice() PrinterDevice {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.device
}

func (p *PrintUseCase) IsConnected() bool {
	device := p.currentDevice()
	return device != nil && device.Connected()
}

// Print печатает чек по JSON заказа и возвращает идентификатор задания.
func (p *PrintUseCase) Print(ctx context.Context, content string) string {
	const op = "PrintUseCase.Print"

	job := domain.NewPrintJob(uuid.NewString(), time.Now().UTC())
	p.logger.Infof("print job %s: received payload of %d bytes", job.ID, len(content))

	device := p.currentDevice()
	if device == nil || !device.Connected() {
		p.abort(job, e.Wrap(op, e.ErrDeviceUnavailable))
		return job.ID
	}

	order, cmds, err := p.prepare(ctx, job.ID, content)
	if err != nil {
		p.abort(job, e.Wrap(op, err))
		return job.ID
	}

	if !order.Legacy {
		id := order.ID
		job.OrderID = &id
		job.OrderType = string(order.Type)
	}
	job.Total = order.Total()

	sent, err := p.dispatch(device, job.ID, cmds)
	job.Commands = sent
	if err != nil {
		p.abort(job, e.Wrap(op, err))
		return job.ID
	}

	p.logger.Infof("print job %s: dispatched %d commands", job.ID, sent)
	p.record(job)
	return job.ID
}

// prepare разбирает заказ и собирает команды. Паника при форматировании превращается в ошибку.
func (p *PrintUseCase) prepare(ctx context.Context, jobID, content string) (order *domain.Order, cmds []domain.PrintCommand, err error) {
	defer func() {
		if r := recover(); r != nil {
			order, cmds = nil, nil
			err = fmt.Errorf("receipt formatting panicked: %v", r)
		}
	}()

	order, err = p.parser.Parse(content)
	if err != nil {
		return nil, nil, err
	}

	cmds = p.builder.Build(order, p.loadLogo(ctx, jobID))
	return order, cmds, nil
}

// loadLogo возвращает логотип или nil. Отсутствие логотипа не прерывает печать.
func (p *PrintUseCase) loadLogo(ctx context.Context, jobID string) image.Image {
	ctx, cancel := context.WithTimeout(ctx, logoTimeout)
	defer cancel()

	logo, err := p.logo.Logo(ctx)
	if err != nil {
		p.logger.Warnf("print job %s: printing without logo: %v", jobID, err)
		return nil
	}
	return logo
}

// dispatch отправляет команды по порядку, не дожидаясь ответов устройства.
// Возвращает число принятых команд. Синхронная ошибка устройства прерывает отправку.
func (p *PrintUseCase) dispatch(device PrinterDevice, jobID string, cmds []domain.PrintCommand) (int, error) {
	for i, cmd := range cmds {
		cb := p.resultCallback(jobID, i, cmd.Kind)

		var err error
		switch cmd.Kind {
		case domain.CommandInit:
			err = device.PrinterInit(cb)
		case domain.CommandRaw:
			err = device.SendRAWData(cmd.Raw, cb)
		case domain.CommandText:
			err = device.PrintText(cmd.Text, cb)
		case domain.CommandBitmap:
			err = device.PrintBitmap(cmd.Bitmap, cb)
		case domain.CommandLineWrap:
			err = device.LineWrap(cmd.Lines, cb)
		case domain.CommandCut:
			err = device.CutPaper(cb)
		default:
			err = fmt.Errorf("unknown command kind %d", cmd.Kind)
		}

		if err != nil {
			return i, fmt.Errorf("command #%d (%s): %w", i, cmd.Kind, err)
		}
	}

	return len(cmds), nil
}

// resultCallback логирует ответ устройства и дописывает его в журнал задания в фоне.
func (p *PrintUseCase) resultCallback(jobID string, seq int, kind domain.CommandKind) ResultCallback {
	return func(result domain.CommandResult) {
		result.Command = kind.String()
		result.Seq = seq

		if result.Failed() {
			p.logger.Errorf(e.Wrap(result.String(), e.ErrDeviceCommand), "print job %s: command failed", jobID)
		} else {
			p.logger.Debugf("print job %s: %s", jobID, result.String())
		}

		p.background(func(ctx context.Context) {
			if err := p.journal.Append(ctx, jobID, result); err != nil {
				p.logger.Warnf("print job %s: failed to journal result: %v", jobID, err)
			}
		})
	}
}

func (p *PrintUseCase) abort(job *domain.PrintJob, err error) {
	p.logger.Errorf(err, "print job %s aborted", job.ID)
	job.Abort(err)
	p.record(job)
}

// record сохраняет задание в историю и публикует событие в фоне.
func (p *PrintUseCase) record(job *domain.PrintJob) {
	p.background(func(ctx context.Context) {
		if err := p.jobRepo.Create(ctx, job); err != nil {
			p.logger.Warnf("print job %s: failed to save history: %v", job.ID, err)
		}

		if err := p.producer.WritePrintJobEvent(ctx, NewPrintJobEvent(job)); err != nil {
			p.logger.Warnf("print job %s: failed to publish event: %v", job.ID, err)
		}
	})
}

func (p *PrintUseCase) background(fn func(ctx context.Context)) {
	p.bgMu.Lock()
	if p.closed {
		p.bgMu.Unlock()
		p.logger.Warnf("print jobs are shutting down, background write dropped")
		return
	}
	p.wg.Add(1)
	p.bgMu.Unlock()

	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		fn(ctx)
	}()
}

// WaitForBackground запрещает новые фоновые записи и ждёт завершения начатых.
func (p *PrintUseCase) WaitForBackground(ctx context.Context) error {
	p.bgMu.Lock()
	p.closed = true
	p.bgMu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetPrintJob возвращает задание из истории и ответы устройства из журнала.
func (p *PrintUseCase) GetPrintJob(ctx context.Context, id string) (*PrintJobInfo, error) {
	const op = "PrintUseCase.GetPrintJob"

	if _, err := uuid.Parse(id); err != nil {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	job, err := p.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	results, err := p.journal.List(ctx, id)
	if err != nil {
		p.logger.Warnf("print job %s: failed to read journal: %v", id, err)
	}

	return NewPrintJobInfo(job, results), nil
}
