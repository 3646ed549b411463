package app

// Console protocol. The wording is user-visible and matched by scripts, so
// changes here are breaking.
const (
	msgWelcome     = "Welcome to the Quiz Generator!\n"
	promptStart    = "Would you like to start the quiz? (y/n): "
	msgGoodbye     = "Maybe next time. Goodbye!\n"
	promptSubject  = "Choose a subject (%s): "
	msgBadSubject  = "Invalid subject!\n"
	headerQuestion = "\nQuestion %d:\n"
	lineOption     = "%d. %s\n"
	promptAnswer   = "Enter your answer (1-%d): "
	msgCorrect     = "Correct!\n"
	msgIncorrect   = "Incorrect. The correct answer is: %s\n"
	msgInvalid     = "Invalid input. Please enter a number between 1 and %d.\n"
	msgTimeTaken   = "Time taken: %d seconds\n"
	headerSummary  = "\nQuiz Complete!\n"
	lineCorrect    = "Total correct answers: %d\n"
	lineIncorrect  = "Total incorrect answers: %d\n"
	lineTotalTime  = "Total time taken: %d seconds\n"
	promptReplay   = "Do you want to reattempt the quiz? (y/n): "
)

// confirmed reports whether a start or replay answer means yes.
// Only the first character counts, so "y", "Y" and "yes" all confirm.
func confirmed(token string) bool {
	return token != "" && (token[0] == 'y' || token[0] == 'Y')
}
