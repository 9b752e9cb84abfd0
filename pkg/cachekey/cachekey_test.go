package cachekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{name: "single segment", segments: []string{"events"}, want: "events"},
		{name: "two segments", segments: []string{"events", "all"}, want: "events::all"},
		{name: "three segments", segments: []string{"attendances", "stats", "global"}, want: "attendances::stats::global"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.segments...))
		})
	}
}

func TestForID(t *testing.T) {
	assert.Equal(t, "events::id::7", ForID("events", 7))
	assert.Equal(t, "participants::id::0", ForID("participants", 0))
}

func TestForIDIsDeterministic(t *testing.T) {
	assert.Equal(t, ForID("events", 42), ForID("events", 42))
}
