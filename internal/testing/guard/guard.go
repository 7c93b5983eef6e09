// Package guard switches the process into test mode when imported. Test
// binaries import it for its side effect.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("BIZTIME_TEST_MODE") == "" {
			_ = os.Setenv("BIZTIME_TEST_MODE", "1")
		}
	})
}
