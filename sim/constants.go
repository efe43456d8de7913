package sim

// Constants the core must honour bit-exact for reproducibility.
const (
	LandingDuration = 2.0
	TakeoffDuration = 2.0
	SampleInterval  = 1.0

	TimeStdDev   = 5.0
	TimeTruncate = 15.0

	FuelMin     = 20.0
	FuelMax     = 60.0
	FuelReserve = 10.0

	EmergencyMechanicalProb = 0.01
	EmergencyPassengerProb  = 0.01
	EmergencyFuelProb       = 0.005
)
