package scoring

import "github.com/jonathan/university-match/internal/types"

// ConvertGPA converts a grade from the given grading system to the 4.0 scale.
// A zero grade always converts to 0. An empty system label means "4.0" and any
// unrecognized label is read as a percentage.
//
// German grades are reflected (1.0 best -> 4.0) without clamping, so inputs
// outside 1.0-4.0 produce values outside the 4.0 scale.
func ConvertGPA(gpa float64, system string) float64 {
	if gpa == 0 {
		return 0.0
	}

	switch system {
	case "", types.GradingSystem4_0:
		return gpa
	case types.GradingSystemUK:
		return convertUK(gpa)
	case types.GradingSystemGerman:
		return 5.0 - gpa
	case types.GradingSystemFrench:
		return (gpa / 20.0) * 4.0
	default:
		return (gpa / 100.0) * 4.0
	}
}

// convertUK maps UK degree percentages onto 4.0 bands:
// first (70+) 3.7-4.0, upper second (60-69) 3.0-3.6,
// lower second (50-59) 2.0-2.9, below 50 0-1.9.
func convertUK(gpa float64) float64 {
	switch {
	case gpa >= 70:
		return min(4.0, 3.7+((gpa-70)/30.0)*0.3)
	case gpa >= 60:
		return 3.0 + ((gpa-60)/10.0)*0.6
	case gpa >= 50:
		return 2.0 + ((gpa-50)/10.0)*0.9
	default:
		return (gpa / 50.0) * 1.9
	}
}
