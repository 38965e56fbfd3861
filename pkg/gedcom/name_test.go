package gedcom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vamsahq/vamsa/pkg/gedcom"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  gedcom.Name
	}{
		{
			name:  "given and surname",
			value: "John /Smith/",
			want:  gedcom.Name{First: "John", Last: "Smith"},
		},
		{
			name:  "surname only",
			value: "/Smith/",
			want:  gedcom.Name{Last: "Smith"},
		},
		{
			name:  "no slashes",
			value: "Madonna",
			want:  gedcom.Name{First: "Madonna"},
		},
		{
			name:  "empty value",
			value: "",
			want:  gedcom.Name{},
		},
		{
			name:  "suffix after surname",
			value: "John /Smith/ Jr",
			want:  gedcom.Name{First: "John  Jr", Last: "Smith"},
		},
		{
			name:  "multi word given name",
			value: "Mary  Ann /O'Brien/",
			want:  gedcom.Name{First: "Mary  Ann", Last: "O'Brien"},
		},
		{
			name:  "surname padding trimmed",
			value: "Jane / van Dyke /",
			want:  gedcom.Name{First: "Jane", Last: "van Dyke"},
		},
		{
			name:  "unterminated surname",
			value: "John /Smith",
			want:  gedcom.Name{First: "John", Last: "Smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.ParseName(tt.value))
		})
	}
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "John /Smith/", gedcom.FormatName("John", "Smith"))
	assert.Equal(t, "Unknown /Unknown/", gedcom.FormatName("Unknown", "Unknown"))
}
