package gedcom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsahq/vamsa/pkg/gedcom"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"full date", "15 JAN 1985", "1985-01-15"},
		{"full date single digit day", "5 JAN 1985", "1985-01-05"},
		{"month and year", "JAN 1985", "1985-01"},
		{"year only", "1985", "1985"},
		{"about qualifier", "ABT 1985", "1985"},
		{"before qualifier", "BEF 12 MAR 1900", "1900-03-12"},
		{"after qualifier", "AFT JUN 1920", "1920-06"},
		{"range keeps first date", "BET 1975 AND 1985", "1975"},
		{"range of full dates", "BET 1 JAN 1975 AND 3 FEB 1985", "1975-01-01"},
		{"out of range day", "99 JAN 1985", ""},
		{"day past month end", "31 FEB 1985", ""},
		{"sept alias", "15 SEPT 1985", "1985-09-15"},
		{"lowercase month", "15 jan 1985", "1985-01-15"},
		{"unknown month", "15 FOO 1985", ""},
		{"iso full passthrough", "1985-01-15", "1985-01-15"},
		{"iso month passthrough", "1985-01", "1985-01"},
		{"empty", "", ""},
		{"garbage", "sometime later", ""},
		{"extra whitespace", "  15 JAN 1985  ", "1985-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.ParseDate(tt.value))
		})
	}
}

func TestAnchorDate(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		want      time.Time
	}{
		{
			name:      "full precision",
			canonical: "1985-06-10",
			want:      time.Date(1985, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "month precision anchors to first day",
			canonical: "1985-06",
			want:      time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "year precision anchors to january first",
			canonical: "1985",
			want:      time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gedcom.AnchorDate(tt.canonical)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("unknown stays nil", func(t *testing.T) {
		assert.Nil(t, gedcom.AnchorDate(""))
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "no zero padding on day",
			in:   time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
			want: "1 JUN 1985",
		},
		{
			name: "two digit day",
			in:   time.Date(1900, 12, 25, 0, 0, 0, 0, time.UTC),
			want: "25 DEC 1900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.FormatDate(tt.in))
		})
	}
}
