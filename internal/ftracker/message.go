package ftracker

import (
	"fmt"
	"math"
)

const messageFormat = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// InfoMessage is a summary of a finished training.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary as a single line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer
func (m InfoMessage) String() string {
	return m.Message()
}

// ShowTrainingInfo collects training results into InfoMessage.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("cannot calculate %s calories: %w", t.Name(), err)
	}

	info := InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     calories,
	}
	if err := info.checkFinite(); err != nil {
		return InfoMessage{}, fmt.Errorf("cannot summarize %s: %w", t.Name(), err)
	}
	return info, nil
}

// checkFinite rejects values encoding/json cannot marshal.
func (m InfoMessage) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"duration", m.Duration},
		{"distance", m.Distance},
		{"speed", m.Speed},
		{"calories", m.Calories},
	}
	for _, f := range fields {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return fmt.Errorf("%w: %s is %v", ErrNonFiniteResult, f.name, f.value)
		}
	}
	return nil
}
