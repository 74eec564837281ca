//go:build !windows && !linux && !darwin

package winslot

// No native driver exists for this platform; New fails unless the caller
// supplies one with WithDriver.
func newPlatformDriver() (Driver, error) {
	return nil, ErrNoDriver
}
