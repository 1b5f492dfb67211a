package fork

import (
	"os"
	"time"
)

type ProcessOpt = func(p *BackgroundProcess)

// WithEnv добавляет процессу переменные окружения вида KEY=VALUE поверх текущего окружения
func WithEnv(env ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		if p.cmd.Env == nil {
			p.cmd.Env = os.Environ()
		}
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs добавляет процессу аргументы командной строки
func WithArgs(args ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// WaitPortConnTimeout устанавливает таймаут одной попытки подключения к порту
func WaitPortConnTimeout(d time.Duration) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.waitPortConnTimeout = d
	}
}

// WaitPortInterval устанавливает интервал между попытками подключения к порту
func WaitPortInterval(d time.Duration) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.waitPortInterval = d
	}
}
