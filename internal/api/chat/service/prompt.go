package chatService

import (
	"fmt"
	"strings"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/pkg/classifier"
)

const systemPromptBase = `You are a helpful technical assistant for Metro, a company specializing in solar systems, generators, inverters, and electrical systems.

Your job is to:
1. Understand the user's intent from their message
2. Answer naturally and conversationally
3. Use the structured data provided to you when it is present

IMPORTANT GUIDELINES:
- Be conversational and natural - respond to greetings appropriately
- If the user asks how things work, answer from your knowledge about solar, generators, inverters, electrical systems
- Keep responses helpful and concise
- Use the user's name if available
- NEVER list contact details, phone numbers, emails, or prices inside your reply text. Recommendations are shown to the user separately as structured cards; your reply should reference them in general terms only (for example "I found a few products that match" or "a technician can help with that").`

// buildSystemPrompt appends the user context when the caller is known.
func buildSystemPrompt(profile *chat.UserProfile) string {
	if profile == nil || profile.Name == "" {
		return systemPromptBase
	}
	return systemPromptBase + fmt.Sprintf("\nUser Profile: %s (Email: %s)", profile.Name, profile.Email)
}

// buildAnswerPrompt frames the user's question together with whatever
// was fetched. Fetched records are summarized by name only so the model
// cannot leak contacts or prices into prose.
func buildAnswerPrompt(userMessage string, fetched fetchedData, verbosity classifier.Verbosity, knowledgeContext []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User asked: %q\n\n", userMessage)

	if len(knowledgeContext) > 0 {
		b.WriteString("Relevant knowledge base excerpts:\n")
		for i, excerpt := range knowledgeContext {
			fmt.Fprintf(&b, "%d. %s\n", i+1, excerpt)
		}
		b.WriteString("\n")
	}

	if !fetched.Empty() {
		b.WriteString("Matching records were found in our database (shown to the user as cards alongside your reply):\n")
		for _, p := range fetched.Products {
			fmt.Fprintf(&b, "- Product: %s (%s)\n", p.Name, p.Category)
		}
		for _, t := range fetched.Technicians {
			fmt.Fprintf(&b, "- Technician: %s, speciality %s\n", t.Name, t.Speciality)
		}
		for _, s := range fetched.Salesmen {
			fmt.Fprintf(&b, "- Salesman: %s, speciality %s\n", s.Name, s.Speciality)
		}
		for _, e := range fetched.Employees {
			fmt.Fprintf(&b, "- Employee: %s, %s (%s)\n", e.Name, e.Position, e.Department)
		}
		b.WriteString("\nGenerate a helpful reply that answers the question and points the user to the cards. Do not repeat contact details or prices in the text.\n")
	} else {
		b.WriteString("No database records accompany this reply. Respond from general knowledge.\n")
	}

	if verbosity == classifier.VerbosityShort {
		b.WriteString("Keep the reply to 1-3 sentences.\n")
	} else {
		b.WriteString("Keep the reply concise but informative, 2-4 sentences.\n")
	}

	return b.String()
}
