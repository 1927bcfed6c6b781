package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// AssertEqual checks if two values are equal
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	assert.Equal(t, want, got, msg)
}

// AssertNotEqual checks if two values are not equal
func AssertNotEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	assert.NotEqual(t, want, got, msg)
}

// AssertNil checks if value is nil
func AssertNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	assert.Nil(t, got, msg)
}

// AssertNotNil checks if value is not nil
func AssertNotNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	assert.NotNil(t, got, msg)
}

// AssertNoError checks if error is nil
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	assert.NoError(t, err, msg)
}

// AssertError checks if error is not nil
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	assert.Error(t, err, msg)
}

// AssertErrorContains checks if error contains specific text
func AssertErrorContains(t *testing.T, err error, want string, msg string) {
	t.Helper()
	if !assert.Error(t, err, msg) {
		return
	}
	assert.True(t, strings.Contains(err.Error(), want), "%s: error %q does not contain %q", msg, err.Error(), want)
}

// AssertTrue checks if condition is true
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	assert.True(t, condition, msg)
}

// AssertFalse checks if condition is false
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	assert.False(t, condition, msg)
}

// AssertTimeAlmostEqual checks if two times are within delta
func AssertTimeAlmostEqual(t *testing.T, got, want time.Time, delta time.Duration, msg string) {
	t.Helper()
	assert.WithinDuration(t, want, got, delta, msg)
}

// AssertLen checks if slice/map has expected length
func AssertLen(t *testing.T, got interface{}, want int, msg string) {
	t.Helper()
	assert.Len(t, got, want, msg)
}
