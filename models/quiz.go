package models

// QuizResult is the outcome of one quiz submission. It is not a table of its
// own: the client keeps it for the results page, and for signed-in users the
// interesting parts are copied onto the User row.
type QuizResult struct {
	Scores         ScoreVector `json:"scores"`
	TopCategory    string      `json:"topCategory"`
	CareerInterest string      `json:"careerInterest"`
}
