package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spamlens/internal/textnorm"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		supplied  string
		want      string
	}{
		{name: "only supplied", extracted: "", supplied: "hello", want: "hello"},
		{name: "only extracted", extracted: "hello", supplied: "", want: "hello"},
		{name: "both trimmed", extracted: " a ", supplied: " b ", want: "a b"},
		{name: "both empty", extracted: "", supplied: "", want: ""},
		{name: "whitespace only", extracted: " \n\t", supplied: "   ", want: ""},
		{name: "extracted whitespace", extracted: "\r\n", supplied: " hi mom ", want: "hi mom"},
		{name: "multiline ocr", extracted: "line one\r\nline two\r\n", supplied: "note", want: "line one\r\nline two note"},
		{name: "cjk", extracted: " 恭喜中獎 ", supplied: "請回電", want: "恭喜中獎 請回電"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Merge(tt.extracted, tt.supplied))
		})
	}
}

func TestMerge_OrderMatters(t *testing.T) {
	assert.Equal(t, "a b", textnorm.Merge("a", "b"))
	assert.Equal(t, "b a", textnorm.Merge("b", "a"))
}
