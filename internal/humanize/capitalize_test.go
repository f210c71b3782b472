package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Už 5 minučių", Capitalize("už 5 minučių"))
	assert.Equal(t, "Prieš 1 minutę", Capitalize("prieš 1 minutę"))
	assert.Equal(t, "Šiandien", Capitalize("šiandien"))
	assert.Equal(t, "5 minutės", Capitalize("5 minutės"))
	assert.Equal(t, "", Capitalize(""))
}
