package pricing

// FAQItem is a question and answer pair shown under the plans.
type FAQItem struct {
	Question string
	Answer   string
}

var faq = []FAQItem{
	{
		Question: "Can I change plans later?",
		Answer:   "Yes. You can upgrade or downgrade at any time, and the change takes effect on your next billing cycle.",
	},
	{
		Question: "Is there a free trial?",
		Answer:   "Every plan comes with a 14-day free trial. No credit card is required to start.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards and bank transfers for annual Enterprise contracts.",
	},
	{
		Question: "Can I cancel anytime?",
		Answer:   "Absolutely. There are no long-term contracts, and you keep access until the end of the period you paid for.",
	},
}

// FAQ returns the pricing questions in display order.
func FAQ() []FAQItem {
	return append([]FAQItem(nil), faq...)
}
