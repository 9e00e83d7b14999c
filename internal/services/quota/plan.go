package quota

// Plan splits pairCount pairs across teamCount teams: every team gets
// pairCount/teamCount, and the first pairCount%teamCount teams get one more.
// The quotas sum to pairCount and differ by at most one.
func Plan(pairCount, teamCount int) []int {
	if teamCount <= 0 {
		return nil
	}
	if pairCount < 0 {
		pairCount = 0
	}

	base := pairCount / teamCount
	extra := pairCount % teamCount

	quotas := make([]int, teamCount)
	for i := range quotas {
		quotas[i] = base
		if i < extra {
			quotas[i]++
		}
	}
	return quotas
}
