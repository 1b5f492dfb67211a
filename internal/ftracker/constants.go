package ftracker

// Training codes sent by sensors.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

const (
	lenStep = 0.65 // mean step length, m
	mInKm   = 1000 // meters in a kilometer
	minInH  = 60   // minutes in an hour

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38 // stroke length, m
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// profile is the fixed constant bundle of one training kind.
type profile struct {
	label   string
	lenStep float64
	arity   int // number of positional values in a sensor package
}

var profiles = map[string]profile{
	CodeRunning:  {label: "Running", lenStep: lenStep, arity: 3},
	CodeWalking:  {label: "SportsWalking", lenStep: lenStep, arity: 4},
	CodeSwimming: {label: "Swimming", lenStep: swimmingLenStep, arity: 5},
}

// baseProfile is used by a Base record that is not bound to any code.
var baseProfile = profile{label: "Training", lenStep: lenStep}

func profileOf(code string) profile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return baseProfile
}

// Codes returns known training codes in a stable order.
func Codes() []string {
	return []string{CodeSwimming, CodeRunning, CodeWalking}
}
