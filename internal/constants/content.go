package constants

// MicroDares is the fixed pool of daily micro-dares. The dare for a given day
// is selected by day-of-month, so it is stable for the whole day.
var MicroDares = []string{
	"Drink a glass of water right now.",
	"Read 1 page of a book.",
	"Take 5 deep breaths.",
	"Stand up and stretch for 30 seconds.",
	"Write down one thing you're grateful for.",
	"Unclench your jaw and drop your shoulders.",
	"Do 5 pushups or air squats.",
	"Clear your desk of one piece of trash.",
}

// AntiMotivationLines are shown when the user has anti-motivation mode on.
var AntiMotivationLines = []string{
	"Skipping today is fine. Just don't lie to yourself.",
	"No pressure. Habits don't build themselves.",
	"Motivation is a lie. Discipline is the truth.",
	"You're not 'too busy'. You're just prioritizing other things.",
	"Stop waiting for the 'right time'. It's gone.",
	"If it was easy, you wouldn't be here.",
}

// NormalLines are the default motivation lines.
var NormalLines = []string{
	"Every small step counts towards Future You.",
	"Keep the streak alive, you're doing great.",
	"Consistency is the key to transformation.",
	"You've got this. One day at a time.",
	"Believe in the process.",
}
