// Package seed holds the static demo dataset the dashboard is loaded with
// at startup. It stands in for a real database seed script.
package seed

import (
	"time"

	"invoicedash/internal/records"
)

// Data groups the four record collections the application works on.
type Data struct {
	Customers []records.Customer
	Invoices  []records.Invoice
	Revenue   []records.Revenue
	Users     []records.User
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Demo returns the fixed demo dataset.
func Demo() Data {
	customers := []records.Customer{
		{
			ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
			Name:     "Ada Byron",
			Email:    "ada@example.com",
			ImageURL: "/customers/ada-byron.png",
		},
		{
			ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
			Name:     "Grace Hopper",
			Email:    "grace@example.com",
			ImageURL: "/customers/grace-hopper.png",
		},
		{
			ID:       "3958dc9e-737f-4377-85e9-fec4b6a6442a",
			Name:     "Alan Turing",
			Email:    "alan@example.com",
			ImageURL: "/customers/alan-turing.png",
		},
		{
			ID:       "50ca3e18-62cd-11ee-8c99-0242ac120002",
			Name:     "Edsger Dijkstra",
			Email:    "edsger@example.com",
			ImageURL: "/customers/edsger-dijkstra.png",
		},
		{
			ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
			Name:     "Barbara Liskov",
			Email:    "barbara@example.com",
			ImageURL: "/customers/barbara-liskov.png",
		},
		{
			ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
			Name:     "Tony Hoare",
			Email:    "tony@example.com",
			ImageURL: "/customers/tony-hoare.png",
		},
	}

	invoices := []records.Invoice{
		{CustomerID: customers[0].ID, Amount: 15795, Status: records.StatusPending, Date: date(2022, time.December, 6)},
		{CustomerID: customers[1].ID, Amount: 20348, Status: records.StatusPending, Date: date(2022, time.November, 14)},
		{CustomerID: customers[4].ID, Amount: 3040, Status: records.StatusPaid, Date: date(2022, time.October, 29)},
		{CustomerID: customers[3].ID, Amount: 44800, Status: records.StatusPaid, Date: date(2023, time.September, 10)},
		{CustomerID: customers[5].ID, Amount: 34577, Status: records.StatusPending, Date: date(2023, time.August, 5)},
		{CustomerID: customers[2].ID, Amount: 54246, Status: records.StatusPending, Date: date(2023, time.July, 16)},
		{CustomerID: customers[0].ID, Amount: 66666, Status: records.StatusPending, Date: date(2023, time.June, 27)},
		{CustomerID: customers[3].ID, Amount: 32545, Status: records.StatusPaid, Date: date(2023, time.June, 9)},
		{CustomerID: customers[4].ID, Amount: 1250, Status: records.StatusPaid, Date: date(2023, time.June, 17)},
		{CustomerID: customers[5].ID, Amount: 8546, Status: records.StatusPaid, Date: date(2023, time.February, 18)},
		{CustomerID: customers[1].ID, Amount: 500, Status: records.StatusPaid, Date: date(2023, time.January, 31)},
		{CustomerID: customers[2].ID, Amount: 8945, Status: records.StatusPaid, Date: date(2023, time.March, 7)},
		{CustomerID: customers[0].ID, Amount: 8945, Status: records.StatusPaid, Date: date(2023, time.March, 7)},
	}

	revenue := []records.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	}

	users := []records.User{
		{
			ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: "$2b$10$Qw8pY1yD5R0eFh0kq5uJ0eJ3mC9sVYtq1bq1hV3G1sXx0kq5uJ0eK",
		},
	}

	return Data{
		Customers: customers,
		Invoices:  invoices,
		Revenue:   revenue,
		Users:     users,
	}
}
