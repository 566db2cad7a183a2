package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStages_Order(t *testing.T) {
	stages := Stages()

	assert.Len(t, stages, 11)
	assert.Equal(t, StageEnquiry, stages[0].ID)
	assert.Equal(t, StageCompleted, stages[len(stages)-1].ID)

	seen := map[Stage]bool{}
	for _, info := range stages {
		assert.NotEmpty(t, info.Title)
		assert.False(t, seen[info.ID], "duplicate stage %s", info.ID)
		seen[info.ID] = true
	}
}

func TestStages_ReturnsCopy(t *testing.T) {
	first := Stages()
	first[0].Title = "mangled"

	assert.Equal(t, "Enquiry", Stages()[0].Title)
}

func TestValidStage(t *testing.T) {
	for _, info := range Stages() {
		assert.True(t, ValidStage(info.ID))
	}
	assert.False(t, ValidStage("archived"))
	assert.False(t, ValidStage(""))
}
