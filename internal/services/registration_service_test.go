package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSVRow_QuotesEveryCell(t *testing.T) {
	var b strings.Builder
	writeCSVRow(&b, []string{"Name", "a,b", `say "hi"`})

	assert.Equal(t, "\"Name\",\"a,b\",\"say \"\"hi\"\"\"\n", b.String())
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "value", orDash("value"))
}
