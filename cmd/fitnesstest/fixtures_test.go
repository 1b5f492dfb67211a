package fitnesstest

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

const (
	startProcessTimeout = time.Second * 10
	checkPortInterval   = time.Millisecond * 100
	runProcessTimeout   = time.Second * 30
)

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Require *require.Assertions
	Ctx     context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	if flagBinaryPath == "" {
		t.Skip("-binary-path flag is not set")
	}

	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Require:    require.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func BinaryPath(e *Env) string {
	return ExistPath(e, flagBinaryPath)
}

// PackagesFile writes packages to a temporary YAML file
func PackagesFile(e *Env, packages []sensor.Package) string {
	var buf bytes.Buffer
	e.Require.NoError(sensor.Encode(&buf, packages), "Не удалось сформировать файл с пакетами")

	path := filepath.Join(e.t.TempDir(), random.ASCIIString(5, 8)+".yaml")
	e.Require.NoError(os.WriteFile(path, buf.Bytes(), 0o600), "Не удалось записать файл с пакетами")
	e.Logf("Файл с пакетами %q:\n%s", path, buf.String())
	return path
}

type RunResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// RunBinary runs ftracker until exit
func RunBinary(e *Env, args ...string) RunResult {
	ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
	defer cancel()

	p := fork.NewBackgroundProcess(ctx, BinaryPath(e), fork.WithArgs(args...))
	e.Logf("Запускаю %q", p)

	exitCode, err := p.Run(ctx)
	e.Require.NoErrorf(err, "Не удалось выполнить %q", p)

	res := RunResult{ExitCode: exitCode, Stdout: p.Stdout(), Stderr: p.Stderr()}
	if len(res.Stderr) > 0 {
		e.Logf("Вывод stderr:\n%s", res.Stderr)
	}
	return res
}

func StartProcess(e *Env, name string, command string, args ...string) *fork.BackgroundProcess {
	cacheKey := append([]string{name, command}, args...)
	return fixenv.CacheWithCleanup(e, cacheKey, nil, func() (*fork.BackgroundProcess, fixenv.FixtureCleanupFunc, error) {
		res := fork.NewBackgroundProcess(e.Ctx, command, fork.WithArgs(args...))

		e.Logf("Запускаю %q: %q %#v", name, command, args)
		err := res.Start(e.Ctx)
		if err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			e.Logf("Останавливаю %q: %q %#v", name, command, args)
			exitCode, err := res.Stop(syscall.SIGTERM, syscall.SIGKILL)
			if err != nil {
				e.Logf("Не получилось остановить процесс: %+v", err)
			}
			if exitCode != 0 {
				e.Logf("Ненулевой код возврата: %v", exitCode)
			}
			if out := res.Stderr(); len(out) > 0 {
				e.Logf("Вывод stderr процесса:\n%s", out)
			}
		}
		return res, cleanup, nil
	})
}

func StartProcessWhichListenPort(e *Env, host string, port int, name string, command string, args ...string) *fork.BackgroundProcess {
	cacheKey := append([]string{host, strconv.Itoa(port), name, command}, args...)
	return fixenv.Cache[*fork.BackgroundProcess](e, cacheKey, nil, func() (*fork.BackgroundProcess, error) {
		process := StartProcess(e, name, command, args...)
		ctx, cancel := context.WithTimeout(e.Ctx, startProcessTimeout)
		defer cancel()

		address := fmt.Sprintf("%v:%v", host, port)
		dialer := net.Dialer{}
		for {
			time.Sleep(checkPortInterval)
			e.Logf("Пробую подключиться на %q...", address)
			conn, err := dialer.DialContext(ctx, "tcp", address)
			if err == nil {
				e.Logf("Закрываю успешное подключение")
				err = conn.Close()
				return process, err
			}
			if ctx.Err() != nil {
				return nil, err
			}
		}
	})
}

// ServerAddress starts ftracker HTTP server on a free port and returns its base URL
func ServerAddress(e *Env) string {
	return fixenv.Cache(&e.EnvT, "server-address", nil, func() (string, error) {
		listen, err := random.UnusedAddress("localhost")
		if err != nil {
			return "", fmt.Errorf("cannot find unused port: %w", err)
		}

		host, portS, err := net.SplitHostPort(listen)
		if err != nil {
			return "", err
		}
		port, err := strconv.Atoi(portS)
		if err != nil {
			return "", err
		}

		StartProcessWhichListenPort(e, host, port, "ftracker server", BinaryPath(e), "serve", "-a", listen, "-log-level", "debug")
		return "http://" + listen, nil
	})
}

func RestyClient(e *Env, host string) *resty.Client {
	return fixenv.Cache[*resty.Client](e, host, nil, func() (*resty.Client, error) {
		return resty.New().SetHostURL(host).SetRedirectPolicy(resty.NoRedirectPolicy()), nil
	})
}
