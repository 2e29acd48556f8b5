package catalog

import "strings"

// ClassifyWorkoutName maps a free-text workout title to a plan kind by a
// case-insensitive substring test, checking "push", "pull" and "leg" in
// that order.
func ClassifyWorkoutName(name string) Kind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "push"):
		return KindPush
	case strings.Contains(lower, "pull"):
		return KindPull
	case strings.Contains(lower, "leg"):
		return KindLegs
	}
	return KindUnknown
}

// ExercisePlanOf returns the first plan, in enumeration order, that lists
// the exercise. It may disagree with ClassifyWorkoutName for the same record.
func ExercisePlanOf(exercise string) Kind {
	for _, p := range plans {
		for _, s := range p.Sections {
			for _, e := range s.Exercises {
				if e == exercise {
					return p.Key
				}
			}
		}
	}
	return KindUnknown
}
