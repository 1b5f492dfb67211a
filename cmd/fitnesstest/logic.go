// Package fitnesstest checks a built ftracker binary end to end.
package fitnesstest

import (
	"fmt"
	"math"
)

// Reference formulas, kept independent from internal/ftracker.
const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool int, duration float64) float64 {
	return float64(lengthPool) * float64(countPool) / mInKm / duration
}

func runningSpentCalories(action int, weight, duration float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*meanSpeed(action, duration) - runningCaloriesMeanSpeedShift) *
		weight / mInKm * duration * minInH
}

func walkingSpentCalories(action int, duration, weight, height float64) float64 {
	d := distance(action, lenStep)
	return (walkingCaloriesWeightMultiplier*weight + floorDiv(d*d, height)*walkingSpeedHeightMultiplier*weight) *
		duration * minInH
}

// floorDiv is float floor division with the quotient taken from the
// remainder, so 169 // 1.3 gives 129 rather than floor(130.0).
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	f := math.Floor(div)
	if div-f > 0.5 {
		f++
	}
	return f
}

func swimmingSpentCalories(lengthPool, countPool int, duration, weight float64) float64 {
	return (swimmingMeanSpeed(lengthPool, countPool, duration) + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * weight
}

func message(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		trainingType, duration, distance, speed, calories)
}

// expectedMessage returns summary line the binary must print for the package.
func expectedMessage(code string, data []float64) (string, error) {
	action, duration, weight := int(data[0]), data[1], data[2]

	switch code {
	case "RUN":
		return message("Running", duration, distance(action, lenStep), meanSpeed(action, duration),
			runningSpentCalories(action, weight, duration)), nil
	case "WLK":
		return message("SportsWalking", duration, distance(action, lenStep), meanSpeed(action, duration),
			walkingSpentCalories(action, duration, weight, data[3])), nil
	case "SWM":
		lengthPool, countPool := int(data[3]), int(data[4])
		return message("Swimming", duration, distance(action, swimmingLenStep), swimmingMeanSpeed(lengthPool, countPool, duration),
			swimmingSpentCalories(lengthPool, countPool, duration, weight)), nil
	}
	return "", fmt.Errorf("unexpected training code %q", code)
}
