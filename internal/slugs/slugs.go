// Package slugs generates short, human-readable match identifiers (e.g.
// "amber-falcon") and, optionally, reserves them across a shared registry
// using a distributed lock.
package slugs

// Allocator reserves a unique, human-readable slug. Implementations must
// guarantee the returned slug is not already in use by the given isTaken
// predicate at the moment of return.
type Allocator interface {
	Generate(isTaken func(slug string) bool) string
}

var adjectives = []string{
	"amber", "brave", "crimson", "dapper", "eager", "fierce", "golden",
	"hollow", "icy", "jolly", "keen", "lucky", "mellow", "nimble", "opal",
	"plucky", "quiet", "rustic", "silver", "tidy", "umber", "vivid",
	"windy", "xenial", "yellow", "zesty",
}

var nouns = []string{
	"falcon", "badger", "comet", "dolphin", "ember", "fox", "gecko",
	"heron", "ibis", "jaguar", "kite", "lynx", "moth", "newt", "otter",
	"panther", "quail", "raven", "sparrow", "tiger", "urchin", "viper",
	"wolf", "xerus", "yak", "zebra",
}
