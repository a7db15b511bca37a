package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/maderas-pos/pkg/normalize"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "machimbre cedro", normalize.Fold("Machimbré Cédro"))
	assert.Equal(t, "liston 2x4", normalize.Fold("  LISTÓN 2x4 "))
	assert.Equal(t, "niquel", normalize.Fold("Níquel"))
}

func TestFold_EntradaSinAcentos(t *testing.T) {
	assert.Equal(t, "tabla pino", normalize.Fold("tabla pino"))
	assert.Equal(t, "", normalize.Fold("   "))
}

func TestFold_ConservaEnie(t *testing.T) {
	// La ñ se descompone en n + tilde virgulilla; tras quitar marcas queda "n".
	// Es el comportamiento esperado para búsqueda laxa.
	assert.Equal(t, "pino patula", normalize.Fold("Pino Pátula"))
	assert.Equal(t, "canon", normalize.Fold("Cañón"))
}
