package sanctuary

// Milestone is a named achievement unlocked by placing enough stars.
type Milestone struct {
	Name          string
	RequiredStars int
	Emoji         string
	Color         Color
}

// milestones is ordered by ascending threshold.
var milestones = [...]Milestone{
	{Name: "hope", RequiredStars: 5, Emoji: "🌟", Color: RGB8(255, 215, 0)},
	{Name: "peace", RequiredStars: 7, Emoji: "🕊️", Color: RGB8(135, 206, 250)},
	{Name: "growth", RequiredStars: 10, Emoji: "🌱", Color: RGB8(124, 205, 124)},
	{Name: "joy", RequiredStars: 15, Emoji: "✨", Color: RGB8(255, 105, 180)},
}

// Milestones returns a copy of the milestone table in threshold order.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones[:])
	return out
}

// Achieved returns the highest milestone whose threshold is at most
// starCount. ok is false below the first threshold.
func Achieved(starCount int) (m Milestone, ok bool) {
	for i := len(milestones) - 1; i >= 0; i-- {
		if starCount >= milestones[i].RequiredStars {
			return milestones[i], true
		}
	}
	return Milestone{}, false
}

// NextMilestone returns the lowest milestone not yet reached at starCount.
// ok is false once every milestone is unlocked.
func NextMilestone(starCount int) (m Milestone, ok bool) {
	for _, ms := range milestones {
		if starCount < ms.RequiredStars {
			return ms, true
		}
	}
	return Milestone{}, false
}
