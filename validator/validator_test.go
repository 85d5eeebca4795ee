/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokengen/internal/mapfs"
	"bennypowers.dev/tokengen/validator"
)

var generated = []string{
	"--ds-color-fill-neutral-200",
	"--ds-space-md",
	"--ds-text-primary",
}

func names(findings []validator.Finding) []string {
	result := make([]string, len(findings))
	for i, f := range findings {
		result[i] = f.Name
	}
	return result
}

func TestLanguageOf(t *testing.T) {
	tests := map[string]validator.Language{
		"a.css":          validator.CSS,
		"index.HTML":     validator.HTML,
		"page.htm":       validator.HTML,
		"el.js":          validator.JavaScript,
		"el.ts":          validator.JavaScript,
		"README.md":      validator.Unsupported,
		"tokens.json":    validator.Unsupported,
		"no-extension":   validator.Unsupported,
		"styles.min.css": validator.CSS,
	}
	for path, want := range tests {
		assert.Equal(t, want, validator.LanguageOf(path), path)
	}
}

func TestAudit_CSS(t *testing.T) {
	a := validator.NewAuditor(generated)
	defer a.Close()

	source := `.card {
  --card-gap: 4px;
  padding: var(--ds-space-md);
  gap: var(--card-gap);
  color: var(--ds-text-secondary);
  border-color: var(--ds-border-muted, #ccc);
}
`
	findings := a.Audit("card.css", validator.CSS, []byte(source))

	require.Len(t, findings, 1)
	assert.Equal(t, "--ds-text-secondary", findings[0].Name)
	assert.Equal(t, uint(4), findings[0].Line)
	assert.Equal(t, "card.css:5:10: --ds-text-secondary is not a generated custom property (define it locally or add a fallback)", findings[0].Error())
}

func TestAudit_SuggestsPrefixedName(t *testing.T) {
	a := validator.NewAuditor(generated)
	defer a.Close()

	findings := a.Audit("a.css", validator.CSS, []byte(`a { margin: var(--space-md); }`))

	require.Len(t, findings, 1)
	assert.Equal(t, "did you mean --ds-space-md?", findings[0].Suggestion)
}

func TestAudit_SuggestionIsStable(t *testing.T) {
	names := []string{"--zz-space-md", "--ds-space-md", "--mm-space-md", "--ab-space-md"}
	for range 20 {
		a := validator.NewAuditor(names)
		findings := a.Audit("a.css", validator.CSS, []byte(`a { margin: var(--space-md); }`))
		a.Close()

		require.Len(t, findings, 1)
		assert.Equal(t, "did you mean --ab-space-md?", findings[0].Suggestion)
	}
}

func TestAudit_HTML(t *testing.T) {
	a := validator.NewAuditor(generated)
	defer a.Close()

	source := `<!doctype html>
<html>
<head>
  <style>
    body { color: var(--ds-text-primary); background: var(--ds-background-base); }
  </style>
</head>
<body>
  <div style="padding: var(--ds-space-xl)"></div>
</body>
</html>
`
	findings := a.Audit("index.html", validator.HTML, []byte(source))

	assert.ElementsMatch(t, []string{"--ds-background-base", "--ds-space-xl"}, names(findings))
	for _, f := range findings {
		switch f.Name {
		case "--ds-background-base":
			assert.Equal(t, uint(4), f.Line)
		case "--ds-space-xl":
			assert.Equal(t, uint(8), f.Line)
			assert.Equal(t, uint(23), f.Column)
		}
	}
}

func TestAudit_JavaScript(t *testing.T) {
	a := validator.NewAuditor(generated)
	defer a.Close()

	source := "import { css } from 'lit';\n" +
		"export const styles = css`\n" +
		"  :host { color: var(--ds-text-primary); }\n" +
		"  .tone { background: var(--ds-grey-hover); }\n" +
		"`;\n" +
		"const notCSS = `a { color: var(--ds-ignored); }`;\n"

	findings := a.Audit("el.js", validator.JavaScript, []byte(source))

	require.Len(t, findings, 1)
	assert.Equal(t, "--ds-grey-hover", findings[0].Name)
	assert.Equal(t, uint(3), findings[0].Line)
}

func TestAuditFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/src/a.css", `a { color: var(--missing); }`, 0644)
	mfs.AddFile("/src/b.css", `b { color: var(--ds-text-primary); }`, 0644)
	mfs.AddFile("/src/notes.txt", `var(--also-missing)`, 0644)

	a := validator.NewAuditor(generated)
	defer a.Close()

	findings, err := a.AuditFiles(mfs, []string{"/src/a.css", "/src/b.css", "/src/notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--missing"}, names(findings))
	assert.Equal(t, "/src/a.css", findings[0].FilePath)

	_, err = a.AuditFiles(mfs, []string{"/src/gone.css"})
	assert.Error(t, err)
}
