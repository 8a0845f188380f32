package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World Event", "hello-world-event"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces\tand tabs", "multiple-spaces-and-tabs"},
		{"ALLCAPS", "allcaps"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}
