package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/history"
	"github.com/2beens/workoutlog/internal/workouts"
)

func writePlans(out io.Writer) {
	for i, p := range catalog.All() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		info, _ := catalog.TypeInfo(p.Key)
		fmt.Fprintf(out, "%s %s [%s]\n", info.Icon, p.Title, p.Key)
		for _, s := range p.Sections {
			fmt.Fprintf(out, "  %s\n", s.Title)
			for _, e := range s.Exercises {
				fmt.Fprintf(out, "    - %s\n", e)
			}
		}
	}
}

// kindMarks tag calendar days in plain text output.
var kindMarks = map[catalog.Kind]string{
	catalog.KindPush: "P",
	catalog.KindPull: "U",
	catalog.KindLegs: "L",
}

// writeCalendar prints the month grid. Days with workouts carry a mark:
// P push, U pull, L legs and * for unclassified workouts. Days of the
// neighbouring months are left blank.
func writeCalendar(out io.Writer, records []workouts.Record, month time.Time, loc *time.Location) {
	grid := history.BuildCalendar(records, month.Year(), month.Month(), loc)

	fmt.Fprintln(out, month.Format("January 2006"))
	fmt.Fprintln(out, " Su  Mo  Tu  We  Th  Fr  Sa")
	for _, week := range history.Weeks(grid) {
		cells := make([]string, 0, 7)
		for _, d := range week {
			cells = append(cells, calendarCell(d))
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, ""), " "))
	}
	fmt.Fprintln(out, "P push  U pull  L legs  * other")
}

func calendarCell(d history.Day) string {
	if !d.InMonth {
		return "    "
	}
	mark := " "
	switch {
	case d.Tagged():
		mark = kindMarks[d.Kind]
	case d.Count > 0:
		mark = "*"
	}
	return fmt.Sprintf(" %2d%s", d.Date.Day(), mark)
}
