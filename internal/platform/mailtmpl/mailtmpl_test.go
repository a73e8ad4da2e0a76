package mailtmpl

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimNao(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, "Sim", SimNao(&yes))
	assert.Equal(t, "Não", SimNao(&no))
	assert.Equal(t, "—", SimNao(nil))
	assert.Equal(t, "—", OrDash("  "))
	assert.Equal(t, "x", OrDash("x"))
}

func TestRender_EscapesInput(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/t.html": {Data: []byte(`<p>{{.Name}} {{yesNo .On}}</p>`)},
	}
	tpl, err := Parse(fsys, "t.html")
	require.NoError(t, err)

	out, err := Render(tpl, struct {
		Name string
		On   bool
	}{Name: "<script>alert(1)</script>", On: true})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt; Sim</p>", out)
}
