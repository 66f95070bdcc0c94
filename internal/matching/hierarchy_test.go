package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoversReflexive(t *testing.T) {
	assert.True(t, Covers("NR-35", "NR-35"))
	assert.True(t, Covers("NR-35", "nr-35 "))
	assert.True(t, Covers("código-inventado", "CODIGO INVENTADO"))
}

func TestCoversHierarchy(t *testing.T) {
	// chief mate/master certificate satisfies the officer-of-the-watch requirement
	assert.True(t, Covers("A-II/1", "A-II/2"))
	assert.True(t, Covers("HUET", "T-HUET"))
	assert.True(t, Covers("CAEPP", "CBSP"))

	// coverage is directional
	assert.False(t, Covers("A-II/2", "A-II/1"))
	assert.False(t, Covers("CBSP", "CAEPP"))
}

func TestCoversEmptyInputs(t *testing.T) {
	assert.False(t, Covers("", "NR-35"))
	assert.False(t, Covers("NR-35", ""))
	assert.False(t, Covers("", ""))
}

func TestCoversUnknownCodes(t *testing.T) {
	assert.False(t, Covers("NR-35", "NR-10"))
}
