package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// statsPage renders a table the way the league stats page does, with
// alternating row stripes and the stat columns at fixed positions.
func statsPage(rows ...string) string {
	var builder strings.Builder
	builder.WriteString("<html><body><table><tbody>")
	for _, row := range rows {
		builder.WriteString(row)
	}
	builder.WriteString("</tbody></table></body></html>")
	return builder.String()
}

func statsRow(stripe, name, team, agent, rounds, rating, acs, kills, deaths, assists string) string {
	cells := []string{name, team, agent, rounds, rating, acs, kills, deaths, assists}
	var builder strings.Builder
	builder.WriteString(`<tr class="` + stripe + `">`)
	for _, cell := range cells {
		builder.WriteString("<td>" + cell + "</td>")
	}
	builder.WriteString("</tr>")
	return builder.String()
}

func TestParseStatsTable(t *testing.T) {
	t.Run("parsesStripedRows", func(t *testing.T) {
		page := statsPage(
			statsRow("bg-white", "aspas", "LEV", "Jett", "120", "1.21", "265.4", "230", "180", "45"),
			statsRow("bg-gray-200", " less ", "LEV", "Viper", "118", "1.10", "221", "190", "160", "90"),
		)

		players, err := ParseStatsTable(strings.NewReader(page))

		assert.NoError(t, err)
		assert.Len(t, players, 2)
		assert.Equal(t, RawPlayerStat{Name: "aspas", Kills: 230, Deaths: 180, Assists: 45, ACS: 265.4}, players[0])
		// Whitespace around the cell text is stripped.
		assert.Equal(t, "less", players[1].Name)
		assert.Equal(t, 221.0, players[1].ACS)
	})

	t.Run("skipsMalformedRows", func(t *testing.T) {
		page := statsPage(
			statsRow("bg-white", "aspas", "LEV", "Jett", "120", "1.21", "265.4", "230", "180", "45"),
			// Too few columns.
			`<tr class="bg-gray-200"><td>short</td><td>row</td></tr>`,
			// Non numeric kills.
			statsRow("bg-white", "broken", "LEV", "Omen", "10", "1.0", "200", "n/a", "5", "3"),
			// Empty name.
			statsRow("bg-gray-200", "  ", "LEV", "Sova", "10", "1.0", "200", "5", "5", "3"),
		)

		players, err := ParseStatsTable(strings.NewReader(page))

		assert.NoError(t, err)
		assert.Len(t, players, 1)
		assert.Equal(t, "aspas", players[0].Name)
	})

	t.Run("ignoresUnstripedRows", func(t *testing.T) {
		page := statsPage(
			statsRow("bg-blue-100", "header-ish", "x", "x", "1", "1", "1", "1", "1", "1"),
			statsRow("bg-white", "aspas", "LEV", "Jett", "120", "1.21", "265.4", "230", "180", "45"),
		)

		players, err := ParseStatsTable(strings.NewReader(page))

		assert.NoError(t, err)
		assert.Len(t, players, 1)
	})

	t.Run("emptyPageIsAnError", func(t *testing.T) {
		players, err := ParseStatsTable(strings.NewReader("<html><body></body></html>"))

		assert.Nil(t, players)
		assert.Error(t, err)
	})
}
