package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/bylines/internal/adapters/report"
	"github.com/jsamuelsen11/bylines/internal/app"
	"github.com/jsamuelsen11/bylines/internal/domain/publishing"
)

const wantScenarioText = `Author: Hafifa Hussein
  articles: AI in 2025, Wellness Tips, Python Rocks
  magazines: TechLife, HealthNow
  topic areas: Technology, Health
Magazine: TechLife (Technology)
  articles: AI in 2025, Python Rocks
  contributors: Hafifa Hussein
  contributing authors: None
Magazine: HealthNow (Health)
  articles: Wellness Tips, Eating Healthy
  contributors: Hafifa Hussein, Ayub Adan
  contributing authors: None
Top publisher: TechLife (2 articles)
Drift: None
`

func TestRunScenario_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := report.NewRenderer(&buf, report.FormatText)
	require.NoError(t, err)

	svc := app.NewPublishingService(publishing.NewCatalog(), nil, nil)
	require.NoError(t, runScenario(context.Background(), svc, r))

	assert.Equal(t, wantScenarioText, buf.String())
}

func TestRunScenario_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := report.NewRenderer(&buf, report.FormatJSON)
	require.NoError(t, err)

	svc := app.NewPublishingService(publishing.NewCatalog(), nil, nil)
	require.NoError(t, runScenario(context.Background(), svc, r))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	kinds := make([]string, len(lines))
	for i, line := range lines {
		var doc struct {
			Kind string `json:"kind"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &doc))
		kinds[i] = doc.Kind
	}
	assert.Equal(t, []string{"author", "magazine", "magazine", "top_publisher", "audit"}, kinds)
}

func TestRun_LocalProfile(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("APP_PROFILE", "local")
	t.Setenv("APP_LOG_LEVEL", "error")

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf))

	assert.Equal(t, wantScenarioText, buf.String())
}

func TestRun_InvalidProfile(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("APP_PROFILE", "missing")

	err := run(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
