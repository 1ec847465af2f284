package models

const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"

	progressPrefix = "wren_"
	quotePrefix    = "tim_thought_"
)

// MaxChapters is the number of chapters in the Wren & Martin course.
const MaxChapters = 40

// ProgressKey is where the chapter counter of email is stored.
func ProgressKey(email string) string {
	return progressPrefix + email
}

// QuoteKey is where the quote chosen for date (YYYY-MM-DD) is cached.
func QuoteKey(date string) string {
	return quotePrefix + date
}

// Quotes are the daily thoughts Tim picks from.
var Quotes = []string{
	"Small steps every day lead to big results.",
	"Mistakes are proof you're trying.",
	"Your effort today is your success tomorrow.",
	"Learning is a journey, not a race.",
	"Consistency beats perfection.",
	"Read a page, meet a new idea.",
}

// IsQuote reports whether s is one of Quotes.
func IsQuote(s string) bool {
	for _, q := range Quotes {
		if q == s {
			return true
		}
	}
	return false
}
