package ftracker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

const delta = 1e-9

func TestRunning(t *testing.T) {
	r, err := ftracker.NewRunning(720, 1, 75)
	require.NoError(t, err)

	assert.Equal(t, "Running", r.Name())
	assert.InDelta(t, 0.468, r.Distance(), delta)
	assert.InDelta(t, 0.468, r.MeanSpeed(), delta)

	r, err = ftracker.NewRunning(15000, 1, 75)
	require.NoError(t, err)

	calories, err := r.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 699.75, calories, 1e-6)
}

func TestSwimming(t *testing.T) {
	s, err := ftracker.NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	assert.Equal(t, "Swimming", s.Name())
	assert.InDelta(t, 0.9936, s.Distance(), delta)
	assert.InDelta(t, 1.0, s.MeanSpeed(), delta)

	calories, err := s.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, calories, delta)
}

func TestSportsWalking(t *testing.T) {
	w, err := ftracker.NewSportsWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	assert.Equal(t, "SportsWalking", w.Name())
	assert.InDelta(t, 5.85, w.Distance(), delta)

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	// 5.85² / 180 is floored to zero, only the weight term is left
	assert.InDelta(t, 157.5, calories, 1e-6)
}

func TestSportsWalkingFloorDivision(t *testing.T) {
	// 30 km: 900 / 150 = 6 exactly, 31 km: 961 / 150 = 6.4(06) floored to 6
	for _, action := range []int{46154, 47693} {
		w, err := ftracker.NewSportsWalking(action, 2, 80, 150)
		require.NoError(t, err)

		x := w.Distance()
		expected := (0.035*80 + ftracker.FloorDiv(x*x, 150)*0.029*80) * 2 * 60

		calories, err := w.SpentCalories()
		require.NoError(t, err)
		assert.InDelta(t, expected, calories, delta)
		assert.InDelta(t, (0.035*80+6*0.029*80)*2*60, calories, delta)
	}
}

func TestSportsWalkingRemainderFloor(t *testing.T) {
	// 13 km: 169 / 1.3 rounds to 130.0, the floor quotient is 129
	w, err := ftracker.NewSportsWalking(20000, 1, 75, 1.3)
	require.NoError(t, err)

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 16992.0, calories, 1e-6, "калории ходьбы должны считаться через деление с округлением вниз")
}

func TestRandomTrainings(t *testing.T) {
	action := random.Action()
	duration := random.Duration()
	weight := random.Weight()
	height := random.Height()
	lengthPool := random.PoolLength()
	countPool := random.PoolCount()

	t.Run("running", func(t *testing.T) {
		r, err := ftracker.NewRunning(action, duration, weight)
		require.NoError(t, err)

		distance := float64(action) * 0.65 / 1000
		speed := distance / duration
		expected := (18*speed - 20) * weight / 1000 * duration * 60

		calories, err := r.SpentCalories()
		require.NoError(t, err)
		assert.InDelta(t, distance, r.Distance(), delta)
		assert.InDelta(t, speed, r.MeanSpeed(), delta)
		assert.InDelta(t, expected, calories, 1e-6)
	})

	t.Run("walking", func(t *testing.T) {
		w, err := ftracker.NewSportsWalking(action, duration, weight, height)
		require.NoError(t, err)

		distance := float64(action) * 0.65 / 1000
		expected := (0.035*weight + ftracker.FloorDiv(distance*distance, height)*0.029*weight) * duration * 60

		calories, err := w.SpentCalories()
		require.NoError(t, err)
		assert.InDelta(t, distance/duration, w.MeanSpeed(), delta)
		assert.InDelta(t, expected, calories, 1e-6)
	})

	t.Run("swimming", func(t *testing.T) {
		s, err := ftracker.NewSwimming(action, duration, weight, float64(lengthPool), countPool)
		require.NoError(t, err)

		speed := float64(lengthPool) * float64(countPool) / 1000 / duration
		expected := (speed + 1.1) * 2 * weight

		calories, err := s.SpentCalories()
		require.NoError(t, err)
		assert.InDelta(t, float64(action)*1.38/1000, s.Distance(), delta)
		assert.InDelta(t, speed, s.MeanSpeed(), delta)
		assert.InDelta(t, expected, calories, 1e-6)
	})
}

func TestBaseSpentCalories(t *testing.T) {
	b, err := ftracker.NewBase(720, 1, 75)
	require.NoError(t, err)

	assert.Equal(t, "Training", b.Name())
	assert.InDelta(t, 0.468, b.Distance(), delta)

	_, err = b.SpentCalories()
	assert.ErrorIs(t, err, ftracker.ErrNotImplemented)

	_, err = ftracker.ShowTrainingInfo(b)
	assert.ErrorIs(t, err, ftracker.ErrNotImplemented)
}

func TestInvalidValues(t *testing.T) {
	_, err := ftracker.NewRunning(1000, 0, 75)
	assert.ErrorIs(t, err, ftracker.ErrInvalidDuration)

	_, err = ftracker.NewBase(1000, -1, 75)
	assert.ErrorIs(t, err, ftracker.ErrInvalidDuration)

	_, err = ftracker.NewSwimming(1000, 0, 75, 25, 40)
	assert.ErrorIs(t, err, ftracker.ErrInvalidDuration)

	_, err = ftracker.NewSportsWalking(1000, 0, 75, 180)
	assert.ErrorIs(t, err, ftracker.ErrInvalidDuration)

	_, err = ftracker.NewSportsWalking(1000, 1, 75, 0)
	assert.ErrorIs(t, err, ftracker.ErrInvalidHeight)

	_, err = ftracker.NewSportsWalking(1000, 1, 75, math.NaN())
	assert.ErrorIs(t, err, ftracker.ErrInvalidHeight)
}
