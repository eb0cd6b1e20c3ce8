// Package printer реализует термопринтер ESC/POS, подключённый по сети (RAW-порт 9100).
package printer

import (
	"image"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
)

const (
	queueSize = 256

	// Код исключения, когда байты не удалось передать устройству.
	codeWriteFailed = -1
)

type job struct {
	name string
	data []byte
	err  error
	cb   usecase.ResultCallback
}

// Device — открытое соединение с принтером. Команды кодируются в вызывающей горутине
// и пишутся в сокет одной горутиной в порядке поступления; колбэки вызываются из неё же.
type Device struct {
	conn         net.Conn
	writeTimeout time.Duration
	logger       logger.Logger

	queue     chan job
	sendMu    sync.RWMutex // enqueue под RLock, финальный drain под Lock
	done      chan struct{}
	closeOnce sync.Once
	connected atomic.Bool
	wg        sync.WaitGroup
}

func NewDevice(conn net.Conn, writeTimeout time.Duration, logger logger.Logger) *Device {
	d := &Device{
		conn:         conn,
		writeTimeout: writeTimeout,
		logger:       logger,
		queue:        make(chan job, queueSize),
		done:         make(chan struct{}),
	}
	d.connected.Store(true)

	d.wg.Add(2)
	go d.writeLoop()
	go d.readLoop()

	return d
}

func (d *Device) PrinterInit(cb usecase.ResultCallback) error {
	return d.enqueue("init", cmdInit(), nil, cb)
}

func (d *Device) SetAlignment(align domain.Alignment, cb usecase.ResultCallback) error {
	return d.enqueue("align", cmdAlign(byte(align)), nil, cb)
}

// PrintText печатает строку и переводит каретку.
func (d *Device) PrintText(text string, cb usecase.ResultCallback) error {
	return d.enqueue("text", encodeText(text+"\n"), nil, cb)
}

func (d *Device) PrintBitmap(img image.Image, cb usecase.ResultCallback) error {
	data, err := encodeRaster(img)
	return d.enqueue("bitmap", data, err, cb)
}

func (d *Device) LineWrap(lines int, cb usecase.ResultCallback) error {
	return d.enqueue("feed", cmdFeed(lines), nil, cb)
}

func (d *Device) CutPaper(cb usecase.ResultCallback) error {
	return d.enqueue("cut", cmdCut(), nil, cb)
}

func (d *Device) SendRAWData(data []byte, cb usecase.ResultCallback) error {
	return d.enqueue("raw", append([]byte(nil), data...), nil, cb)
}

func (d *Device) Connected() bool {
	return d.connected.Load()
}

// Done закрывается, когда соединение с устройством потеряно или закрыто.
func (d *Device) Done() <-chan struct{} {
	return d.done
}

// Close закрывает соединение. Команды, оставшиеся в очереди, получают исключение.
func (d *Device) Close() error {
	var err error
	d.closeOnce.Do(func() {
		d.connected.Store(false)
		close(d.done)
		err = d.conn.Close()
	})
	d.wg.Wait()
	return err
}

// enqueue ставит команду в очередь. Ошибка кодирования не прерывает очередь:
// она приходит в колбэк как исключение, чтобы сохранить порядок ответов.
func (d *Device) enqueue(name string, data []byte, encErr error, cb usecase.ResultCallback) error {
	d.sendMu.RLock()
	defer d.sendMu.RUnlock()

	select {
	case <-d.done:
		return e.Wrap(name, e.ErrDeviceClosed)
	default:
	}

	select {
	case d.queue <- job{name: name, data: data, err: encErr, cb: cb}:
		return nil
	case <-d.done:
		return e.Wrap(name, e.ErrDeviceClosed)
	}
}

func (d *Device) writeLoop() {
	defer d.wg.Done()

	for {
		select {
		case j := <-d.queue:
			d.write(j)
		case <-d.done:
			// Принятая после закрытия команда тоже должна получить ответ
			d.sendMu.Lock()
			d.drain()
			d.sendMu.Unlock()
			return
		}
	}
}

func (d *Device) write(j job) {
	if j.err != nil {
		d.reply(j, domain.ExceptionResult(codeWriteFailed, j.err.Error()))
		return
	}

	if d.writeTimeout > 0 {
		_ = d.conn.SetWriteDeadline(time.Now().Add(d.writeTimeout))
	}

	if _, err := d.conn.Write(j.data); err != nil {
		d.logger.Warnf("printer write failed, closing connection: %v", err)
		d.reply(j, domain.ExceptionResult(codeWriteFailed, err.Error()))
		go d.Close()
		return
	}

	d.reply(j, domain.RunResult(true))
}

func (d *Device) drain() {
	for {
		select {
		case j := <-d.queue:
			d.reply(j, domain.ExceptionResult(codeWriteFailed, e.ErrDeviceClosed.Error()))
		default:
			return
		}
	}
}

func (d *Device) reply(j job, result domain.CommandResult) {
	if j.cb != nil {
		j.cb(result)
	}
}

// readLoop читает статусные байты принтера. Обрыв чтения означает потерю соединения.
func (d *Device) readLoop() {
	defer d.wg.Done()

	buf := make([]byte, 64)
	for {
		n, err := d.conn.Read(buf)
		if n > 0 {
			d.logger.Debugf("printer status bytes: % x", buf[:n])
		}
		if err != nil {
			select {
			case <-d.done:
			default:
				if err != io.EOF {
					d.logger.Warnf("printer connection lost: %v", err)
				}
				go d.Close()
			}
			return
		}
	}
}
