package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportRowWeekday(t *testing.T) {
	row := ReportRow{Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, time.Friday, row.Weekday())
}
