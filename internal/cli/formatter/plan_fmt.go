package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/payment"
)

// FormatPlans renders the plan choices offered at the payment gate.
func FormatPlans(plans []payment.Plan) string {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{TierBadge(p.Tier), StyleBold.Render(p.Display()), p.Description})
	}
	return RenderTable([]string{"PLAN", "PRICE", "INCLUDES"}, rows)
}

// FormatPlanStatus renders the current plan and the recent ledger.
func FormatPlanStatus(plan domain.PaymentPlan, payments []*domain.Payment, now time.Time) string {
	var b strings.Builder
	b.WriteString(Field("Plan", TierBadge(plan)) + "\n")
	if !plan.Valid() {
		b.WriteString("\n" + Dim("Run `astroveda onboard` to choose a plan.") + "\n")
	}
	if len(payments) == 0 {
		return b.String()
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			HumanTimestamp(p.CreatedAt, now),
			string(p.Tier),
			"₹" + p.Amount.String() + " " + p.Currency,
			StyleDim.Render(p.PaymentID),
		})
	}
	b.WriteString("\n" + Header("Recent payments") + "\n")
	b.WriteString(RenderTable([]string{"WHEN", "TIER", "AMOUNT", "PAYMENT"}, rows))
	return b.String()
}
