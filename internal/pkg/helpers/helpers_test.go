package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{raw: "1", want: 1, wantOK: true},
		{raw: " 42 ", want: 42, wantOK: true},
		{raw: "0"},
		{raw: "-5"},
		{raw: "abc"},
		{raw: "1.5"},
		{raw: ""},
		{raw: "99999999999999999999"},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("-5m", time.Hour))
}
