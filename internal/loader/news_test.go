package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNews_Basics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "news.csv", `headline,date,publisher,ticker,url
Stocks rally on strong earnings,2024-01-02 14:30:00,Reuters,AAPL,https://www.reuters.com/a
Regulators open probe,2024-01-02,BLOOMBERG,MSFT,https://bloomberg.com/b
Untagged market wrap,2024-01-03,,,
`)

	data, err := LoadNews(path, NewsOptions{})
	require.NoError(t, err)
	require.Len(t, data.Headlines, 3)
	assert.Equal(t, 0, data.Skipped)

	first := data.Headlines[0]
	assert.Equal(t, "AAPL", first.Ticker)
	assert.Equal(t, "reuters", first.Publisher)
	assert.Equal(t, time.UTC, first.Timestamp.Location())
	assert.NotEqual(t, first.ID, data.Headlines[1].ID)

	// Empty publisher normalizes to "unknown"; empty ticker is kept.
	last := data.Headlines[2]
	assert.Equal(t, "unknown", last.Publisher)
	assert.Equal(t, "", last.Ticker)
}

func TestLoadNews_SkipsUnusableRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "news.csv", `headline,date,publisher
Good headline,2024-01-01,reuters
,2024-01-01,reuters
Broken timestamp,not-a-date,reuters
`)

	data, err := LoadNews(path, NewsOptions{})
	require.NoError(t, err)
	assert.Len(t, data.Headlines, 1)
	assert.Equal(t, 2, data.Skipped)
}

func TestLoadNews_MaxRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "news.csv", `headline,date
one,2024-01-01
two,2024-01-02
three,2024-01-03
`)

	data, err := LoadNews(path, NewsOptions{MaxRows: 2})
	require.NoError(t, err)
	assert.Len(t, data.Headlines, 2)
}

func TestLoadNews_TickerFilterKeepsUntagged(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "news.csv", `headline,date,ticker
about apple,2024-01-01,AAPL
about microsoft,2024-01-01,MSFT
about nothing,2024-01-01,
`)

	data, err := LoadNews(path, NewsOptions{Tickers: []string{"AAPL"}})
	require.NoError(t, err)
	require.Len(t, data.Headlines, 2)
	assert.Equal(t, "AAPL", data.Headlines[0].Ticker)
	assert.Equal(t, "", data.Headlines[1].Ticker)
}

func TestLoadNews_MissingHeadlineColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "news.csv", `date,publisher
2024-01-01,reuters
`)

	_, err := LoadNews(path, NewsOptions{})
	require.Error(t, err)
}
