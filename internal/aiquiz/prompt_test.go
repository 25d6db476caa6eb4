package aiquiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("5", "Güneş, Dünya ve Ay", "Ay'ın evreleri", 3)

	assert.Contains(t, p, "5. sınıf seviyesine uygun")
	assert.Contains(t, p, `"Güneş, Dünya ve Ay" ünitesi`)
	assert.Contains(t, p, `"Ay'ın evreleri" konusu için 3 adet`)
	assert.Contains(t, p, "Sorular 5. sınıf seviyesinde olsun")
	assert.True(t, strings.HasSuffix(p, promptExample))

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, p, BuildPrompt("5", "Güneş, Dünya ve Ay", "Ay'ın evreleri", 3))
	})

	t.Run("NoValidation", func(t *testing.T) {
		assert.Contains(t, BuildPrompt("", "", "", 0), "için 0 adet")
	})
}
