package shop

// Stage is a step of the preparation sequence.
//
//	Idle -> AddingMilk -> AddingSyrup -> Ready
type Stage int

const (
	StageIdle Stage = iota
	StageAddingMilk
	StageAddingSyrup
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageAddingMilk:
		return "AddingMilk"
	case StageAddingSyrup:
		return "AddingSyrup"
	case StageReady:
		return "Ready"
	default:
		return "Unknown"
	}
}
