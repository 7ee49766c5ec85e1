package stats

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"valfantasy/pkg/messages"

	"github.com/PuerkitoBio/goquery"
)

// RawPlayerStat is one row of the league stats table.
type RawPlayerStat struct {
	Name    string
	Kills   int
	Deaths  int
	Assists int
	ACS     float64
}

// Column positions on the stats page table.
const (
	nameColumn    = 0
	acsColumn     = 5
	killsColumn   = 6
	deathsColumn  = 7
	assistsColumn = 8
	minColumns    = 9
)

// rowSelector matches the alternating table stripes the page renders.
const rowSelector = "tr.bg-gray-200, tr.bg-white"

// ParseStatsTable extracts the player rows from the stats page HTML.
// Malformed rows are skipped, a page without any parsable row is an error.
func ParseStatsTable(r io.Reader) ([]RawPlayerStat, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var players []RawPlayerStat
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minColumns {
			return
		}

		name := strings.TrimSpace(cells.Eq(nameColumn).Text())
		if name == "" {
			return
		}

		kills, killsErr := cellInt(cells, killsColumn)
		deaths, deathsErr := cellInt(cells, deathsColumn)
		assists, assistsErr := cellInt(cells, assistsColumn)
		acs, acsErr := cellFloat(cells, acsColumn)
		if killsErr != nil || deathsErr != nil || assistsErr != nil || acsErr != nil {
			return
		}

		players = append(players, RawPlayerStat{
			Name:    name,
			Kills:   kills,
			Deaths:  deaths,
			Assists: assists,
			ACS:     acs,
		})
	})

	if len(players) == 0 {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return players, nil
}

func cellInt(cells *goquery.Selection, index int) (int, error) {
	return strconv.Atoi(strings.TrimSpace(cells.Eq(index).Text()))
}

func cellFloat(cells *goquery.Selection, index int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cells.Eq(index).Text()), 64)
}
