package conversation

import "strings"

// Rule is one row of the reply table. Match receives the lower-cased
// utterance.
type Rule struct {
	Name        string
	Match       func(lower string) bool
	Reply       string
	Suggestions []string
}

const Greeting = "Hello! I'm your AI Intake Agent. I'm here to help understand your project needs and qualify you for our services. What kind of project are you looking to build?"

var GreetingSuggestions = []string{
	"I need a web application",
	"I want to build a mobile app",
	"I need help with my existing project",
	"I'm not sure yet, can you help me figure it out?",
}

var genericSuggestions = []string{
	"Tell me more about pricing",
	"What's the typical timeline?",
	"Can you show me examples?",
	"I need to think about it",
}

// Fallback answers any utterance no rule matched.
var Fallback = Rule{
	Name:        "fallback",
	Match:       func(string) bool { return true },
	Reply:       "That's very interesting! Can you tell me more about your specific requirements? The more details you can share, the better I can understand how to help you.",
	Suggestions: genericSuggestions,
}

// DefaultRules is evaluated top to bottom; the first match wins.
var DefaultRules = []Rule{
	{
		Name:  "project-web",
		Match: containsAny("web", "website"),
		Reply: "Great! A web application is a perfect choice. Can you tell me more about the specific features you need? For example, do you need user authentication, payment processing, or any specific integrations?",
		Suggestions: []string{
			"I need user authentication",
			"Payment processing is important",
			"I need specific integrations",
			"I'm not sure about features yet",
		},
	},
	{
		Name:  "project-mobile",
		Match: containsAny("mobile", "app"),
		Reply: "Excellent! Mobile apps are very popular. Are you thinking iOS, Android, or both? Also, what's the main purpose of your app - is it for e-commerce, social networking, productivity, or something else?",
		Suggestions: []string{
			"Both iOS and Android",
			"Just iOS for now",
			"Just Android for now",
			"I'm not sure yet",
		},
	},
	{
		Name:        "existing-project",
		Match:       containsAny("help", "existing"),
		Reply:       "I'd be happy to help with your existing project! What challenges are you currently facing? Are you looking to add new features, fix bugs, improve performance, or something else?",
		Suggestions: genericSuggestions,
	},
	{
		Name:        "undecided",
		Match:       containsAny("not sure", "figure out"),
		Reply:       "No worries at all! Let's start with the basics. What's your business or project about? What problem are you trying to solve for your customers? This will help me understand what type of solution would work best.",
		Suggestions: genericSuggestions,
	},
	{
		Name:  "budget",
		Match: containsAny("budget", "cost", "price"),
		Reply: "Budget is definitely an important factor! We have different packages to fit various budgets. Could you give me a rough range you're thinking? For example, under $25k, $25k-$50k, $50k-$100k, or over $100k?",
		Suggestions: []string{
			"Under $25,000",
			"$25,000 - $50,000",
			"$50,000 - $100,000",
			"Over $100,000",
		},
	},
	{
		Name:        "timeline",
		Match:       containsAny("timeline", "when", "deadline"),
		Reply:       "Timeline is crucial for planning! When are you hoping to have this project completed? Are you looking at a few weeks, a few months, or do you have a specific deadline in mind?",
		Suggestions: genericSuggestions,
	},
}

func containsAny(words ...string) func(string) bool {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}
