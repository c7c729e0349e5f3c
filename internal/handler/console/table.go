package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/usecase/queries"
)

const bookedForLayout = "2006-01-02 15:04"

type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t table) render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n%s\n", t.title, strings.Repeat("=", len([]rune(t.title))))
	if len(t.rows) == 0 {
		fmt.Fprintln(w, "No records found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total records: %d\n", len(t.rows))
}

func memberTable(views []*queries.MemberView) table {
	t := table{title: "Sports Complex Members", headers: []string{"Username", "Email", "Balance"}}
	for _, v := range views {
		t.rows = append(t.rows, []string{v.ID, v.Email, "$" + v.PaymentDue})
	}
	return t
}

func bookingTable(views []*queries.BookingView) table {
	t := table{
		title:   "Room Bookings",
		headers: []string{"Booking ID", "Room ID", "Room Type", "Booking DateTime", "Member ID", "Payment Status"},
	}
	for _, v := range views {
		t.rows = append(t.rows, []string{
			fmt.Sprint(v.BookingID),
			v.RoomID,
			v.RoomType,
			v.BookedFor.Format(bookedForLayout),
			v.MemberID,
			paymentStatus(v.PaymentStatus),
		})
	}
	return t
}

func roomTable(rooms []booking.Room) table {
	t := table{title: "Available Rooms", headers: []string{"Room ID", "Room Type"}}
	for _, r := range rooms {
		t.rows = append(t.rows, []string{r.ID, r.Type.String()})
	}
	return t
}

func paymentStatus(s string) string {
	switch strings.ToLower(s) {
	case "paid":
		return "✅ " + s
	case "":
		return "-"
	default:
		return "❌ " + s
	}
}
