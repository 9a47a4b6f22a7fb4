package game

import (
	"math/rand"
)

// Bot - attacker that shoots every cell of the board once, in random order.
type Bot struct {
	targets [][2]int
	next    int
}

func NewBot(size int, rng *rand.Rand) *Bot {
	targets := make([][2]int, 0, size*size)
	for x := range size {
		for y := range size {
			targets = append(targets, [2]int{x, y})
		}
	}

	rng.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})

	return &Bot{targets: targets}
}

// Next returns the next untried coordinate.
func (that *Bot) Next() (int, int, bool) {
	if that.next >= len(that.targets) {
		return 0, 0, false
	}

	t := that.targets[that.next]
	that.next++

	return t[0], t[1], true
}

func (that *Bot) Remaining() int {
	return len(that.targets) - that.next
}
