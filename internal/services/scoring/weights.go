package scoring

// Diversity weights
const (
	// DivisionNoveltyWeight rewards a division not yet present on the team
	DivisionNoveltyWeight = 1.0

	// CompagnonBalanceWeight rewards moving the team's compagnon ratio toward 50/50
	CompagnonBalanceWeight = 1.0

	// FirstPairBonus attracts an inviter to a team holding no pair yet
	FirstPairBonus = 2.0

	// SecondPairBonus is the smaller pull of a team holding exactly one pair
	SecondPairBonus = 1.0

	// PairCrowdingPenalty is charged per pair already on the team once it holds two or more
	PairCrowdingPenalty = 0.5
)
