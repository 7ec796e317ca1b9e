package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantProse string
		wantCode  string
	}{
		{
			name:      "plain text untouched",
			input:     "una risposta semplice",
			wantProse: "una risposta semplice",
		},
		{
			name:      "fenced block extracted",
			input:     "Ecco il codice:\n```python\nprint(1)\n```\nfine",
			wantProse: "Ecco il codice: fine",
			wantCode:  "print(1)",
		},
		{
			name:      "inline fence without language tag",
			input:     "Ecco: ```print(1)``` [1](http://x) **ciao**",
			wantProse: "Ecco: 1 ciao",
			wantCode:  "print(1)",
		},
		{
			name:      "link reduced to label",
			input:     "vedi [la guida](https://example.com/guide)",
			wantProse: "vedi la guida",
		},
		{
			name:      "citation markers removed",
			input:     "come dimostrato[3] in letteratura [12]",
			wantProse: "come dimostrato in letteratura",
		},
		{
			name:      "bold and italic unwrapped",
			input:     "testo **importante** e *enfatizzato* e `inline`",
			wantProse: "testo importante e enfatizzato e inline",
		},
		{
			name:      "headings stripped",
			input:     "# Titolo\ntesto\n## Sottotitolo\naltro",
			wantProse: "Titolo testo Sottotitolo altro",
		},
		{
			name:      "whitespace collapsed",
			input:     "riga uno\n\n\nriga   due\t tre",
			wantProse: "riga uno riga due tre",
		},
		{
			name:      "empty input short-circuits",
			input:     "",
			wantProse: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prose, code := Clean(tt.input)
			assert.Equal(t, tt.wantProse, prose)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestCleanOnlyFirstBlockKept(t *testing.T) {
	prose, code := Clean("a ```uno``` b ```due``` c")
	assert.Equal(t, "a b c", prose)
	assert.Equal(t, "uno", code)
}

func TestCleanIdempotentOnProse(t *testing.T) {
	inputs := []string{
		"Ecco: ```print(1)``` [1](http://x) **ciao**",
		"# Titolo\ncon [link](http://x) e **bold** e ```js\ncode()\n```",
		"testo senza markdown",
	}
	for _, input := range inputs {
		prose, _ := Clean(input)
		again, code := Clean(prose)
		assert.Equal(t, prose, again)
		assert.Empty(t, code)
	}
}
