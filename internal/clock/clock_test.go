package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDate(t *testing.T) {
	c, err := FixedDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), c.Now())
}

func TestFixedDateInvalid(t *testing.T) {
	_, err := FixedDate("09/03/2024")
	assert.Error(t, err)
}

func TestRealClockAdvances(t *testing.T) {
	c := New()
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
