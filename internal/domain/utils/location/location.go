package location

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// DefaultTimezone is the club's civil timezone, used when the config does
// not override it. All day-boundary math runs in this zone so results do
// not depend on the server's local clock.
const DefaultTimezone = "America/Santiago"

var (
	once sync.Once
	loc  *time.Location
)

func Location() *time.Location {
	once.Do(func() {
		name := viper.GetString("settings.timezone")
		if name == "" {
			name = DefaultTimezone
		}
		var err error
		loc, err = time.LoadLocation(name)
		if err != nil {
			log.Printf("error while loading time location %q, falling back to UTC: %v", name, err)
			loc = time.UTC
		}
	})
	return loc
}

// Now returns the current instant in the club timezone.
func Now() time.Time {
	return time.Now().In(Location())
}
