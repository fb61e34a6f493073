package bot

// Fixed reply strings. Every external failure in the pipeline degrades
// to one of these; nothing propagates to the webhook caller.
const (
	GreetingReply = "Hi! Welcome to Atelier. How can I help you today? Ask me about shoes, clothing, accessories or fragrances."

	EmployeeGreetingReply = "Hello! Send me an update to log, or ask away."

	ClarifyGenderReply = "Sure! Is that for men, women, or kids?"

	ClarifyRetryReply = "Please specify: men, women, or kids?"

	NoMatchReply = "I couldn't find that in our catalog. You can browse the full collection, or tell me a bit more about what you're looking for."

	ApologyReply = "Sorry, something went wrong on our side. Please try again in a moment."

	BillingAckFormat = "Logged under %s as entry %s."
)

const customerSystemPrompt = `You are the WhatsApp assistant for Atelier, a retail clothing and accessories brand. Answer briefly and warmly in at most three sentences. You may discuss products, store timings, and orders. Never invent prices or stock levels; point the customer to the catalog instead.`
