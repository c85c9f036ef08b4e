package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last@clinic.example.org", true},
		{"plainaddress", false},
		{"@no-local.com", false},
		{"spaces in@local.com", false},
		{"no-domain@", false},
		{"no-tld@domain", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, validEmail(tt.email))
		})
	}
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := endOfDay(day)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	// still the same calendar day
	assert.Equal(t, day.Day(), end.Day())
	assert.True(t, end.Before(day.AddDate(0, 0, 1)))
}

func TestPaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		total     int64
		pageSize  int
		wantPages int
	}{
		{"exact multiple", 1, 30, 10, 3},
		{"remainder rounds up", 2, 31, 10, 4},
		{"single partial page", 1, 7, 10, 1},
		{"empty set", 1, 0, 10, 0},
		{"staff page size", 1, 25, 12, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginationMeta(tt.page, tt.total, tt.pageSize)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
