package random

import (
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Action returns random number of steps or strokes
func Action() int {
	return int(rnd.Int63n(10000-1000) + 1000)
}

// Duration returns random positive training duration in hours
func Duration() float64 {
	for {
		d := float64(rnd.Int63n(3)) + rnd.Float64()
		if d > 0 {
			return d
		}
	}
}

// Weight returns random weight in kilograms
func Weight() float64 {
	return float64(rnd.Int63n(140-80) + 80)
}

// Height returns random height in centimeters
func Height() float64 {
	return float64(rnd.Int63n(220-150) + 150)
}

// PoolLength returns random pool length in meters
func PoolLength() int {
	return int(rnd.Int63n(50-10) + 10)
}

// PoolCount returns random number of pool lengths
func PoolCount() int {
	return int(rnd.Int63n(10-1) + 1)
}

// TrainingCode returns one of the known training codes
func TrainingCode() string {
	codes := ftracker.Codes()
	return codes[rnd.Intn(len(codes))]
}

// UnknownTrainingCode returns three letter code no training is registered for
func UnknownTrainingCode() string {
	for {
		code := UpperString(3)
		if code != ftracker.CodeRunning && code != ftracker.CodeWalking && code != ftracker.CodeSwimming {
			return code
		}
	}
}

// PackageData returns positional sensor values for given training code.
// Unknown codes get running-shaped data.
func PackageData(code string) []float64 {
	data := []float64{float64(Action()), Duration(), Weight()}
	switch code {
	case ftracker.CodeWalking:
		data = append(data, Height())
	case ftracker.CodeSwimming:
		data = append(data, float64(PoolLength()), float64(PoolCount()))
	}
	return data
}
