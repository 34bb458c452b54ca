package tree

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/pflag"
)

// Season selects the colour of the outermost ring of branches.
type Season int

const (
	// SeasonRandom asks NewState to pick one of the four seasons.
	SeasonRandom Season = iota
	Winter
	Fall
	Summer
	Spring
)

// Seasons lists the concrete seasons in the order random selection draws from.
var Seasons = []Season{Winter, Fall, Summer, Spring}

var seasonNames = map[Season]string{
	SeasonRandom: "random",
	Winter:       "winter",
	Fall:         "fall",
	Summer:       "summer",
	Spring:       "spring",
}

func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// Set implements pflag.Value.
func (s *Season) Set(value string) error {
	parsed, err := ParseSeason(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Season) Type() string {
	return "season"
}

var _ pflag.Value = (*Season)(nil)

// ParseSeason reads a season name, ignoring case. "autumn" is accepted for fall
// and the empty string means random.
func ParseSeason(value string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "random":
		return SeasonRandom, nil
	case "winter":
		return Winter, nil
	case "fall", "autumn":
		return Fall, nil
	case "summer":
		return Summer, nil
	case "spring":
		return Spring, nil
	}
	return SeasonRandom, fmt.Errorf("%w: %q", ErrUnknownSeason, value)
}

func randomSeason(r *rand.Rand) Season {
	return Seasons[r.Intn(len(Seasons))]
}
