package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes the users and bookings tables to w. Missing values render
// as "-", matching the original dashboard's placeholders.
func Render(w io.Writer, state *ViewState) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "USERS")
	fmt.Fprintln(tw, "#\tNAME\tEMAIL\tPHONE")
	if len(state.Users) == 0 {
		fmt.Fprintln(tw, "-\tno users\t\t")
	}
	for i, u := range state.Users {
		phone := u.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, u.Name, u.Email, phone)
	}

	fmt.Fprintln(tw, "")
	fmt.Fprintln(tw, "BOOKINGS")
	fmt.Fprintln(tw, "#\tUSER\tDATE\tCOURT\tHOUR\tSTATUS")
	if len(state.Bookings) == 0 {
		fmt.Fprintln(tw, "-\tno bookings\t\t\t\t")
	}
	for i, b := range state.Bookings {
		name := b.UserName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, name, b.Date, b.Court, b.TimeWindow(), b.StatusLabel())
	}

	return tw.Flush()
}
