package http

import (
	"net/url"
	"strconv"

	"github.com/fwojciec/usacr"
)

// BrowseURL returns the state/year event listing endpoint.
func BrowseURL(state string, year int) string {
	q := url.Values{}
	q.Set("state", state)
	q.Set("race", "")
	q.Set("fyear", strconv.Itoa(year))
	return usacr.BaseURL + "/results/browse.php?" + q.Encode()
}

// PermitURL returns the permit page for an event.
func PermitURL(permit string) string {
	q := url.Values{}
	q.Set("permit", permit)
	return usacr.BaseURL + "/results/?" + q.Encode()
}

// InfoURL returns the AJAX endpoint serving a discipline's category
// fragment. The endpoint expects both the numeric info ID and the label the
// permit page wired onto its tab link.
func InfoURL(infoID, label string) string {
	q := url.Values{}
	q.Set("ajax", "1")
	q.Set("act", "infoid")
	q.Set("info_id", infoID)
	q.Set("label", label)
	return usacr.BaseURL + "/results/index.php?" + q.Encode()
}

// RaceURL returns the AJAX endpoint serving one race's results fragment.
func RaceURL(raceID string) string {
	q := url.Values{}
	q.Set("ajax", "1")
	q.Set("act", "loadresults")
	q.Set("race_id", raceID)
	return usacr.BaseURL + "/results/index.php?" + q.Encode()
}
