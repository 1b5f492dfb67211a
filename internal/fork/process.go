package fork

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BackgroundProcess запускает проверяемый бинарный файл и сохраняет его вывод.
type BackgroundProcess struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer

	waitPortInterval    time.Duration
	waitPortConnTimeout time.Duration
}

// NewBackgroundProcess возвращает новый, еще не запущенный фоновый процесс.
func NewBackgroundProcess(ctx context.Context, command string, opts ...ProcessOpt) *BackgroundProcess {
	p := &BackgroundProcess{
		cmd:                 exec.CommandContext(ctx, command),
		stdout:              new(buffer),
		stderr:              new(buffer),
		waitPortInterval:    100 * time.Millisecond,
		waitPortConnTimeout: 50 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr

	return p
}

// Start создает процесс ОС и запускает выполнение команды.
func (p *BackgroundProcess) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait блокируется до завершения процесса и возвращает его код выхода.
// Ненулевой код выхода ошибкой не считается.
func (p *BackgroundProcess) Wait(ctx context.Context) (exitCode int, err error) {
	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// Run запускает процесс и дожидается его завершения.
func (p *BackgroundProcess) Run(ctx context.Context) (exitCode int, err error) {
	if err := p.Start(ctx); err != nil {
		return -1, err
	}
	return p.Wait(ctx)
}

// WaitPort пытается установить сетевое соединение с указанным портом.
func (p *BackgroundProcess) WaitPort(ctx context.Context, network, port string) error {
	ticker := time.NewTicker(p.waitPortInterval)
	defer ticker.Stop()

	port = strings.TrimLeft(port, ":")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			conn, _ := net.DialTimeout(network, "localhost:"+port, p.waitPortConnTimeout)
			if conn != nil {
				_ = conn.Close()
				return nil
			}
		}
	}
}

// Stdout возвращает все, что процесс успел записать в stdout.
func (p *BackgroundProcess) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr возвращает все, что процесс успел записать в stderr.
func (p *BackgroundProcess) Stderr() []byte {
	return p.stderr.Bytes()
}

// Stop по очереди отправляет процессу переданные сигналы.
// После первого успешно отправленного сигнала возвращается код выхода процесса
func (p *BackgroundProcess) Stop(signals ...os.Signal) (exitCode int, err error) {
	for _, sig := range signals {
		err = p.cmd.Process.Signal(sig)
		if err == nil {
			break
		}
	}

	if err != nil {
		return -1, fmt.Errorf("error sending signal to process: %w", err)
	}

	state, err := p.cmd.Process.Wait()
	if state == nil {
		return -1, err
	}
	return state.ExitCode(), err
}

// String возвращает читаемое представление команды процесса.
func (p *BackgroundProcess) String() string {
	return p.cmd.String()
}
