package booking

// Step is the published state of one booking flow instance.
type Step string

const (
	StepSelection    Step = "SELECTION"
	StepConfirmation Step = "CONFIRMATION"
	StepSuccess      Step = "SUCCESS"
)

func (s Step) String() string {
	return string(s)
}

func (s Step) IsValid() bool {
	switch s {
	case StepSelection, StepConfirmation, StepSuccess:
		return true
	default:
		return false
	}
}

// TimeSlot is one of the three fixed daily availability windows.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

func (t TimeSlot) ID() string {
	return string(t)
}

func (t TimeSlot) Label() string {
	switch t {
	case SlotMorning:
		return "Morning"
	case SlotAfternoon:
		return "Afternoon"
	case SlotEvening:
		return "Evening"
	default:
		return ""
	}
}

func (t TimeSlot) IsValid() bool {
	switch t {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	default:
		return false
	}
}

func AllTimeSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}
}
