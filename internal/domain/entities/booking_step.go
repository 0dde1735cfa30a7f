package entities

// BookingStep is one stage of the skip-hire booking progress bar.
type BookingStep struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

const ActiveStepLabel = "Select Skip"

var bookingStepLabels = []string{
	"Postcode",
	"Waste Type",
	"Select Skip",
	"Permit Check",
	"Choose Date",
	"Payment",
}

// BookingSteps returns the progress steps with activeLabel marked active and
// every earlier step marked completed. An unknown label marks nothing.
func BookingSteps(activeLabel string) []BookingStep {
	active := -1
	for i, l := range bookingStepLabels {
		if l == activeLabel {
			active = i
			break
		}
	}

	steps := make([]BookingStep, 0, len(bookingStepLabels))
	for i, l := range bookingStepLabels {
		steps = append(steps, BookingStep{
			Index:     i,
			Label:     l,
			Active:    i == active,
			Completed: active >= 0 && i < active,
		})
	}
	return steps
}
