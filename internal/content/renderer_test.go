package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Markdown(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		src         string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis",
			src:      "Today I *finally* slept well.",
			contains: []string{"<p>Today I <em>finally</em> slept well.</p>"},
		},
		{
			name:     "hard wraps",
			src:      "line one\nline two",
			contains: []string{"line one<br", "line two"},
		},
		{
			name:     "task list",
			src:      "- [x] walk\n- [ ] stretch",
			contains: []string{"<li>", "walk"},
		},
		{
			name:        "script stripped",
			src:         "hello <script>alert(1)</script>",
			contains:    []string{"hello"},
			notContains: []string{"<script", "alert(1)</script>"},
		},
		{
			name:        "javascript link stripped",
			src:         "[click](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Markdown(tt.src)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_Plain(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "Thanks for sharing!", r.Plain("  <b>Thanks</b> for sharing!<script>x</script> "))
}
