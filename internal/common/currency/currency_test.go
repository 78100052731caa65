package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPenceToPounds(t *testing.T) {
	tests := []struct {
		name  string
		pence int64
		want  string
	}{
		{name: "mixed pounds and pence", pence: 12345, want: "123.45"},
		{name: "under a pound", pence: 99, want: "0.99"},
		{name: "round pounds", pence: 1000, want: "10.00"},
		{name: "zero", pence: 0, want: "0.00"},
		{name: "single penny", pence: 1, want: "0.01"},
		{name: "no thousands separator", pence: 123456789, want: "1234567.89"},
		{name: "negative amount", pence: -250, want: "-2.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PenceToPounds(tt.pence))
		})
	}
}

func TestPoundsFriendly(t *testing.T) {
	assert.Equal(t, "£10.00", PoundsFriendly(1000))
	assert.Equal(t, "£0.50", PoundsFriendly(50))
}
