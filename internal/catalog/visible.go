package catalog

// FilterVisible applies the catalog browsing rule shared by seeds,
// animals and production chains: every candidate whose unlock threshold
// is met is visible, plus exactly one preview - the first candidate (in
// slice order) whose threshold is not yet met. Candidates must already
// be sorted by ascending threshold.
func FilterVisible[T any](candidates []T, threshold func(T) int, tasksCompleted int) []T {
	visible := make([]T, 0, len(candidates))
	previewTaken := false
	for _, c := range candidates {
		if threshold(c) <= tasksCompleted {
			visible = append(visible, c)
			continue
		}
		if !previewTaken {
			visible = append(visible, c)
			previewTaken = true
		}
	}
	return visible
}

// IsUnlocked reports whether a single threshold is met.
func IsUnlocked(unlockTasksRequired, tasksCompleted int) bool {
	return tasksCompleted >= unlockTasksRequired
}
