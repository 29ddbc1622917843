// Package referral builds human-friendly referral codes of the form
// "AdjectiveNounNNNN", e.g. "HappyCat1234".
package referral

import (
	"fmt"
	"math/rand/v2"
)

var adjectives = []string{
	"Cool", "Smart", "Happy", "Fast", "Bright", "Steady", "Chill", "Nice",
	"Good", "Brave", "Calm", "Clever", "Eager", "Faithful", "Gentle", "Kind",
	"Lively", "Neat", "Polite", "Proud", "Silly", "Wise", "Zany", "Fierce",
	"Grumpy", "Helpful", "Jolly", "Mysterious", "Curious", "Swift",
}

var nouns = []string{
	"Cat", "Dog", "Bird", "Fish", "Lion", "Tiger", "Elephant", "Rabbit",
	"Horse", "Sheep", "Duck", "Goose", "Peacock", "Parrot", "Sparrow", "Owl",
	"Eagle", "Pigeon", "Swan", "Crane", "Flamingo", "Pelican", "Penguin",
	"Dove", "Hawk", "Falcon", "Ostrich", "Kiwi", "Quail", "Heron",
}

// NewCode returns a referral code combining a random adjective, a random
// noun and a 4-digit number in [1000, 9999].
func NewCode() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return fmt.Sprintf("%s%s%d", adj, noun, 1000+rand.IntN(9000))
}
