package printer

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/cfg"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventListener struct {
	mu     sync.Mutex
	events []string
	device usecase.PrinterDevice
}

func (l *eventListener) OnConnected(device usecase.PrinterDevice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "connected")
	l.device = device
}

func (l *eventListener) OnDisconnected() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "disconnected")
	l.device = nil
}

func (l *eventListener) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// pipeDialer отдаёт клиентскую сторону net.Pipe и публикует серверную.
type pipeDialer struct {
	mu       sync.Mutex
	failures int
	servers  chan net.Conn
}

func (d *pipeDialer) dial(context.Context) (net.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failures > 0 {
		d.failures--
		return nil, errors.New("connection refused")
	}

	client, server := net.Pipe()
	d.servers <- server
	return client, nil
}

func testPrinterCfg() *cfg.PrinterCfg {
	return &cfg.PrinterCfg{
		Addr:          "pipe",
		NetworkMode:   "tcp",
		ReconnectBase: 5 * time.Millisecond,
		ReconnectMax:  20 * time.Millisecond,
	}
}

func TestBinder_ReconnectsAfterFailuresAndDrops(t *testing.T) {
	dialer := &pipeDialer{failures: 2, servers: make(chan net.Conn, 4)}
	listener := &eventListener{}
	binder := NewBinderWithDialer(dialer.dial, testPrinterCfg(), listener, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go binder.Run(ctx)

	var first net.Conn
	select {
	case first = <-dialer.servers:
	case <-time.After(2 * time.Second):
		t.Fatal("binder did not connect")
	}
	assert.Eventually(t, func() bool { return len(listener.Events()) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, first.Close())

	select {
	case <-dialer.servers:
	case <-time.After(2 * time.Second):
		t.Fatal("binder did not reconnect")
	}
	assert.Eventually(t, func() bool { return len(listener.Events()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"connected", "disconnected", "connected"}, listener.Events())

	cancel()
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, binder.Wait(waitCtx))

	assert.Equal(t, []string{"connected", "disconnected", "connected", "disconnected"}, listener.Events())
}

func TestBinder_StopsWhileDialFails(t *testing.T) {
	dialer := &pipeDialer{failures: 1 << 30, servers: make(chan net.Conn, 1)}
	listener := &eventListener{}
	binder := NewBinderWithDialer(dialer.dial, testPrinterCfg(), listener, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go binder.Run(ctx)

	time.Sleep(30 * time.Millisecond)
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, binder.Wait(waitCtx))
	assert.Empty(t, listener.Events())
}
