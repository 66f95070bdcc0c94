package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("NR-35 Trabalho em Altura", "nr-35 trabalho em altura"))
	assert.Equal(t, 1.0, Similarity("Operação de Içamento", "Operacao de Icamento"))
}

func TestSimilarityContainment(t *testing.T) {
	got := Similarity("Basico de Seguranca", "Treinamento Basico de Seguranca em Plataforma")
	assert.Equal(t, 0.9, got)
}

func TestSimilarityJaccard(t *testing.T) {
	// keywords {basico, seguranca, plataforma} vs {basico, seguranca, offshore}:
	// intersection 2, union 4
	got := Similarity(
		"Treinamento Basico de Seguranca Plataforma",
		"Curso Basico de Seguranca Offshore",
	)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Combate a Incendio Avancado", "Incendio Basico"},
		{"NR-10 Eletricidade", "Seguranca em Instalacoes Eletricas NR-10"},
		{"", "Qualquer Documento"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]))
	}
}

func TestSimilarityBounds(t *testing.T) {
	inputs := []string{"", "a", "NR-33", "Treinamento de Salvatagem", "x y z w"}
	for _, a := range inputs {
		for _, b := range inputs {
			got := Similarity(a, b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}
}

func TestSimilarityEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("de em", "ou se"))
}
