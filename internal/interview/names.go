// internal/interview/names.go
package interview

import "math/rand"

// interviewerNames is the cosmetic pool an interviewer is picked from at
// session creation.
var interviewerNames = []string{
	"Sarah Johnson", "Michael Chen", "Emily Rodriguez", "David Kim",
	"Jessica Taylor", "Ryan Patel", "Amanda Foster", "Kevin Liu",
	"Sophia Martinez", "James Wilson", "Alex Thompson", "Maria Garcia",
	"Daniel Lee", "Rachel Brown", "Christopher Davis", "Lisa Wang",
}

func pickInterviewer() string {
	return interviewerNames[rand.Intn(len(interviewerNames))]
}
