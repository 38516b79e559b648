package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		messages := ValidateStruct(sampleInput{Title: "t", Author: "a", ISBN: "001"})
		assert.Nil(t, messages)
	})

	t.Run("one message per violated field", func(t *testing.T) {
		messages := ValidateStruct(sampleInput{Author: "a"})
		assert.Equal(t, []string{"title is required", "isbn is required"}, messages)
	})

	t.Run("untagged field falls back to lowercased name", func(t *testing.T) {
		var s struct {
			Name string `validate:"required"`
		}
		assert.Equal(t, []string{"name is required"}, ValidateStruct(s))
	})
}
