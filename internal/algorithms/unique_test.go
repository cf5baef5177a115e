package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUnique(t *testing.T) {
	list := []string{"Vale transporte"}

	list = AppendUnique(list, "  vale TRANSPORTE ")
	assert.Equal(t, []string{"Vale transporte"}, list)

	list = AppendUnique(list, "")
	list = AppendUnique(list, "   ")
	assert.Len(t, list, 1)

	list = AppendUnique(list, " Plano odontológico ")
	assert.Equal(t, []string{"Vale transporte", "Plano odontológico"}, list)
}

func TestUniqueList_KeepsFirstSpelling(t *testing.T) {
	got := UniqueList([]string{"Go", "go", "SQL", " GO ", "Docker"})
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, got)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList("   "))
	assert.Equal(t, []string{"Excel", "atendimento"}, SplitList("Excel, atendimento ,excel,,Atendimento"))
}
