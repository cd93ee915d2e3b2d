package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrivers(t *testing.T) {
	assert.Equal(t, []string{"James", "Mary", "Robert", "Patricia"}, Drivers(0, 4))
	assert.Equal(t, []string{"Michael", "Jennifer", "William", "Linda"}, Drivers(1, 4))
	assert.Empty(t, Drivers(3, 0))
}

func TestDriversWrapAround(t *testing.T) {
	n := len(DriverNames)
	got := Drivers(1, n)
	assert.Equal(t, DriverNames, got, "a full lap of the list starts over")

	for race := 0; race < 50; race++ {
		names := Drivers(race, 4)
		seen := map[string]bool{}
		for _, name := range names {
			assert.False(t, seen[name], "race %d repeats %s", race, name)
			seen[name] = true
		}
	}
}
