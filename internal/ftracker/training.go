// Package ftracker calculates distance, mean speed and spent calories
// of running, sports walking and swimming trainings.
package ftracker

import (
	"fmt"
	"math"
)

// Training is the set of calculations every kind of training provides.
type Training interface {
	// Name returns the training label used in summaries.
	Name() string
	// Duration returns training duration in hours.
	Duration() float64
	// Distance returns covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns burned kilocalories.
	SpentCalories() (float64, error)
}

var (
	_ Training = Base{}
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)

// Base holds the values shared by every training and implements
// default distance and mean speed formulas.
type Base struct {
	code     string
	action   int
	duration float64
	weight   float64
}

// NewBase returns a training record that has no calorie formula.
func NewBase(action int, duration, weight float64) (Base, error) {
	return newBase("", action, duration, weight)
}

func newBase(code string, action int, duration, weight float64) (Base, error) {
	if duration <= 0 || math.IsNaN(duration) {
		return Base{}, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	return Base{
		code:     code,
		action:   action,
		duration: duration,
		weight:   weight,
	}, nil
}

// Name returns training label.
func (b Base) Name() string {
	return profileOf(b.code).label
}

// Action returns number of steps or strokes.
func (b Base) Action() int {
	return b.action
}

// Duration returns training duration in hours.
func (b Base) Duration() float64 {
	return b.duration
}

// Weight returns athlete weight in kilograms.
func (b Base) Weight() float64 {
	return b.weight
}

// Distance returns distance in kilometers.
func (b Base) Distance() float64 {
	return float64(b.action) * profileOf(b.code).lenStep / mInKm
}

// MeanSpeed returns mean speed in km/h.
func (b Base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

// SpentCalories always fails for the base record.
func (b Base) SpentCalories() (float64, error) {
	return 0, ErrNotImplemented
}

// Running is a running training.
type Running struct {
	Base
}

// NewRunning returns running training.
func NewRunning(action int, duration, weight float64) (Running, error) {
	b, err := newBase(CodeRunning, action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{Base: b}, nil
}

// SpentCalories returns calories burned while running.
func (r Running) SpentCalories() (float64, error) {
	speed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.duration * minInH, nil
}

// SportsWalking is a sports walking training.
type SportsWalking struct {
	Base
	height float64
}

// NewSportsWalking returns sports walking training. Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	if height == 0 || math.IsNaN(height) {
		return SportsWalking{}, fmt.Errorf("%w: got %v", ErrInvalidHeight, height)
	}
	b, err := newBase(CodeWalking, action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	return SportsWalking{Base: b, height: height}, nil
}

// Height returns athlete height in centimeters.
func (w SportsWalking) Height() float64 {
	return w.height
}

// SpentCalories returns calories burned while walking.
//
// Distance stands in for speed here and x²/height is floor-divided
// with floorDiv; both match the reference calculator output.
func (w SportsWalking) SpentCalories() (float64, error) {
	x := w.Distance()
	return (walkingCaloriesWeightMultiplier*w.weight +
		floorDiv(x*x, w.height)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH, nil
}

// Swimming is a swimming training.
type Swimming struct {
	Base
	lengthPool float64
	countPool  int
}

// NewSwimming returns swimming training. Pool length is in meters.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	b, err := newBase(CodeSwimming, action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	return Swimming{Base: b, lengthPool: lengthPool, countPool: countPool}, nil
}

// LengthPool returns pool length in meters.
func (s Swimming) LengthPool() float64 {
	return s.lengthPool
}

// CountPool returns number of swum pool lengths.
func (s Swimming) CountPool() int {
	return s.countPool
}

// MeanSpeed returns mean swimming speed in km/h.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

// SpentCalories returns calories burned while swimming.
func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight, nil
}
