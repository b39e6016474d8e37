// Package etree writes race results as XML for downstream tooling.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/usacr"
)

// WriteResults writes a race result as an XML document to w. The layout is
// one <rider> element per parsed row, with unparsed rows preserved as
// <failure> elements so exports stay accountable to the source page.
func WriteResults(w io.Writer, res *usacr.RaceResult) error {
	if err := res.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	race := doc.CreateElement("race")
	race.CreateAttr("id", res.ID)
	race.CreateAttr("eventId", res.EventID)
	if res.Category != "" {
		race.CreateAttr("category", res.Category)
	}
	if !res.Date.IsZero() {
		race.CreateAttr("date", res.Date.Format("2006-01-02"))
	}

	riders := race.CreateElement("riders")
	for _, r := range res.Result.Riders {
		rider := riders.CreateElement("rider")
		rider.CreateAttr("place", r.Place.String())
		rider.CreateElement("name").SetText(r.Name)
		if r.Bib > 0 {
			rider.CreateElement("bib").SetText(strconv.Itoa(r.Bib))
		}
		if r.Team != "" {
			rider.CreateElement("team").SetText(r.Team)
		}
		if r.Category != "" {
			rider.CreateElement("category").SetText(r.Category)
		}
		if r.Time != 0 {
			rider.CreateElement("time").SetText(usacr.FormatDuration(r.Time))
		}
	}

	if len(res.Result.Failures) > 0 {
		failures := race.CreateElement("failures")
		for _, f := range res.Result.Failures {
			failure := failures.CreateElement("failure")
			failure.CreateAttr("row", strconv.Itoa(f.Row))
			failure.CreateAttr("reason", string(f.Reason))
			if f.Field != "" {
				failure.CreateAttr("field", f.Field)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
