package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// PlanID identifies a pricing tier. Only the three constants below are valid.
type PlanID string

// Plan identifiers (single source of truth)
const (
	PlanStarter      PlanID = "starter"
	PlanProfessional PlanID = "professional"
	PlanEnterprise   PlanID = "enterprise"
)

// ErrUnknownPlan is returned when a string does not name a plan.
var ErrUnknownPlan = errors.New("unknown plan")

// Plan describes one pricing tier as shown on the pricing page.
type Plan struct {
	ID          PlanID
	Name        string
	Price       string
	Period      string
	Description string
	Icon        string
	Color       string
	Popular     bool
	Features    []string
	Limitations []string
}

var plans = []Plan{
	{
		ID:          PlanStarter,
		Name:        "Starter",
		Price:       "$29",
		Period:      "/month",
		Description: "Everything a small team needs to get organized.",
		Icon:        "zap",
		Color:       "blue",
		Features: []string{
			"Up to 3 team members",
			"Invoicing and expense tracking",
			"Customer contact management",
			"Basic financial reports",
			"Email support",
		},
		Limitations: []string{
			"No inventory management",
			"No custom integrations",
		},
	},
	{
		ID:          PlanProfessional,
		Name:        "Professional",
		Price:       "$79",
		Period:      "/month",
		Description: "For growing businesses that need more power and insight.",
		Icon:        "star",
		Color:       "purple",
		Popular:     true,
		Features: []string{
			"Up to 15 team members",
			"Everything in Starter",
			"Inventory and order management",
			"Advanced analytics dashboard",
			"Payroll and time tracking",
			"Priority email and chat support",
		},
		Limitations: []string{
			"Limited API access",
		},
	},
	{
		ID:          PlanEnterprise,
		Name:        "Enterprise",
		Price:       "$199",
		Period:      "/month",
		Description: "Scale across locations with full control and dedicated help.",
		Icon:        "crown",
		Color:       "amber",
		Features: []string{
			"Unlimited team members",
			"Everything in Professional",
			"Multi-location management",
			"Custom integrations and full API access",
			"Role-based permissions and audit log",
			"Dedicated account manager",
			"24/7 phone support",
		},
	},
}

// Plans returns the pricing tiers in display order. The result is a copy;
// changing it does not affect later calls.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns the plan with the given id.
func Lookup(id PlanID) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Plan{}, false
}

// ParseID converts a raw identifier (e.g. a route parameter) into a PlanID.
// Matching is exact; "Starter" is not a plan.
func ParseID(s string) (PlanID, error) {
	switch id := PlanID(s); id {
	case PlanStarter, PlanProfessional, PlanEnterprise:
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlan, s)
}

// Valid reports whether id is one of the plan constants.
func (id PlanID) Valid() bool {
	_, err := ParseID(string(id))
	return err == nil
}

func (id PlanID) String() string {
	return string(id)
}

// ActionLabel is the text on the plan's primary button.
func (p Plan) ActionLabel() string {
	if p.ID == PlanEnterprise {
		return "Contact Sales"
	}
	return "Get Started"
}

// Summary is a one-line description used in logs and page metadata.
func (p Plan) Summary() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s%s", p.Name, p.Price, p.Period))
}

func (p Plan) clone() Plan {
	p.Features = append([]string(nil), p.Features...)
	p.Limitations = append([]string(nil), p.Limitations...)
	return p
}
