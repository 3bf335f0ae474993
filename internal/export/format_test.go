package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 9, 19, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "sábado, 19 de septiembre de 2026", FormatDate(ts))
	assert.Equal(t, "19 de septiembre de 2026", FormatShortDate(ts))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 1, 5, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "09:05", FormatTime(ts))
	assert.Equal(t, "09:05:07", FormatTimeSeconds(ts))
}
