package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
)

// recordedCall — одна команда, принятая фейковым устройством.
type recordedCall struct {
	Method string
	Arg    any
}

type fakeDevice struct {
	mu        sync.Mutex
	calls     []recordedCall
	connected bool
	failAt    int // номер вызова, на котором устройство отвечает ошибкой, -1 если никогда
	result    func(seq int) domain.CommandResult
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{connected: true, failAt: -1}
}

func (d *fakeDevice) accept(method string, arg any, cb ResultCallback) error {
	d.mu.Lock()
	seq := len(d.calls)
	if d.failAt >= 0 && seq == d.failAt {
		d.mu.Unlock()
		return errors.New("broken pipe")
	}
	d.calls = append(d.calls, recordedCall{Method: method, Arg: arg})
	d.mu.Unlock()

	res := domain.RunResult(true)
	if d.result != nil {
		res = d.result(seq)
	}
	cb(res)
	return nil
}

func (d *fakeDevice) PrinterInit(cb ResultCallback) error { return d.accept("init", nil, cb) }
func (d *fakeDevice) PrintText(text string, cb ResultCallback) error {
	return d.accept("text", text, cb)
}
func (d *fakeDevice) PrintBitmap(img image.Image, cb ResultCallback) error {
	return d.accept("bitmap", img, cb)
}
func (d *fakeDevice) LineWrap(n int, cb ResultCallback) error { return d.accept("feed", n, cb) }
func (d *fakeDevice) CutPaper(cb ResultCallback) error        { return d.accept("cut", nil, cb) }
func (d *fakeDevice) SendRAWData(data []byte, cb ResultCallback) error {
	return d.accept("raw", data, cb)
}
func (d *fakeDevice) Connected() bool { return d.connected }

func (d *fakeDevice) Calls() []recordedCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]recordedCall(nil), d.calls...)
}

type fakeLogo struct {
	img image.Image
	err error
}

func (f *fakeLogo) Logo(context.Context) (image.Image, error) { return f.img, f.err }

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[string]domain.PrintJob
}

func newMemJobRepo() *memJobRepo { return &memJobRepo{jobs: make(map[string]domain.PrintJob)} }

func (r *memJobRepo) Create(_ context.Context, job *domain.PrintJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

func (r *memJobRepo) Get(_ context.Context, id string) (*domain.PrintJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, e.ErrPrintJobNotFound
	}
	return &job, nil
}

type memJournal struct {
	mu      sync.Mutex
	results map[string][]domain.CommandResult
}

func newMemJournal() *memJournal {
	return &memJournal{results: make(map[string][]domain.CommandResult)}
}

func (j *memJournal) Append(_ context.Context, jobID string, r domain.CommandResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.results[jobID] = append(j.results[jobID], r)
	return nil
}

func (j *memJournal) List(_ context.Context, jobID string) ([]domain.CommandResult, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := append([]domain.CommandResult(nil), j.results[jobID]...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Seq < out[b].Seq })
	return out, nil
}

type memProducer struct {
	mu     sync.Mutex
	events []PrintJobEvent
}

func (p *memProducer) WritePrintJobEvent(_ context.Context, ev *PrintJobEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *ev)
	return nil
}

func (p *memProducer) Events() []PrintJobEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PrintJobEvent(nil), p.events...)
}

// recordingLogger запоминает ошибки и предупреждения.
type recordingLogger struct {
	mu     sync.Mutex
	errors []error
	warns  []string
}

func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Infof(string, ...any)  {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(err error, _ string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func (l *recordingLogger) Errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.errors...)
}

func (l *recordingLogger) Warns() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

type panickingBuilder struct{}

func (panickingBuilder) Build(*domain.Order, image.Image) []domain.PrintCommand {
	panic("index out of range")
}
