package ftracker

import (
	"fmt"
	"math"
)

// maxCount is the largest integer a float64 holds exactly.
const maxCount = 1 << 53

// ReadPackage builds a training from sensor data.
// Values are positional:
//
//	SWM: action, duration, weight, pool length, pool count
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
func ReadPackage(code string, data []float64) (Training, error) {
	p, ok := profiles[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraining, code)
	}
	if len(data) != p.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrMalformedPackage, code, p.arity, len(data))
	}

	action, err := toCount("action", data[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read %s package: %w", code, err)
	}
	duration, weight := data[1], data[2]

	var t Training
	switch code {
	case CodeSwimming:
		var countPool int
		if countPool, err = toCount("pool count", data[4]); err != nil {
			return nil, fmt.Errorf("cannot read %s package: %w", code, err)
		}
		t, err = NewSwimming(action, duration, weight, data[3], countPool)
	case CodeRunning:
		t, err = NewRunning(action, duration, weight)
	case CodeWalking:
		t, err = NewSportsWalking(action, duration, weight, data[3])
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s package: %w", code, err)
	}
	return t, nil
}

// toCount truncates an integral package value toward zero.
func toCount(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxCount {
		return 0, fmt.Errorf("%w: %s %v is out of range", ErrMalformedPackage, name, v)
	}
	return int(v), nil
}
