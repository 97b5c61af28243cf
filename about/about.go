package about

// Value is one card in the About page values grid.
type Value struct {
	Icon        string
	Title       string
	Description string
}

// Stat is a headline number on the About page.
type Stat struct {
	Label string
	Value string
}

var values = []Value{
	{
		Icon:        "users",
		Title:       "Customer First",
		Description: "Every feature starts with a conversation with the people who run real businesses on Stratus.",
	},
	{
		Icon:        "target",
		Title:       "Simplicity",
		Description: "Powerful tools should not need a manual. We keep workflows short and screens uncluttered.",
	},
	{
		Icon:        "shield",
		Title:       "Trust & Security",
		Description: "Your books, customers and payroll are protected with bank-grade encryption and daily backups.",
	},
	{
		Icon:        "heart",
		Title:       "Built with Care",
		Description: "A small, focused team that answers its own support tickets and ships improvements every week.",
	},
}

var stats = []Stat{
	{Label: "Founded", Value: "2019"},
	{Label: "Active Users", Value: "50,000+"},
	{Label: "Countries", Value: "30+"},
}

// Values returns the values grid entries in display order.
func Values() []Value {
	return append([]Value(nil), values...)
}

// Stats returns founding year, user count and country count, in that order.
func Stats() []Stat {
	return append([]Stat(nil), stats...)
}
