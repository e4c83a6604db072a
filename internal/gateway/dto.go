// internal/gateway/dto.go
package gateway

// JobSearchRequest is the POST /jobs payload.
type JobSearchRequest struct {
	Query      string   `json:"query"`
	TechSkills []string `json:"tech_skills,omitempty"`
	JobLevel   string   `json:"job_level,omitempty"`
	Limit      int      `json:"limit"`
}

// JobSearchResponse is the POST /jobs response body.
type JobSearchResponse struct {
	Success     bool     `json:"success"`
	Query       string   `json:"query"`
	Jobs        []JobDTO `json:"jobs"`
	Total       int      `json:"total"`
	AIGenerated bool     `json:"ai_generated"`
}

// JobDTO is one job as the remote API describes it. There is no stable id;
// job_type and job_level are free text.
type JobDTO struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	JobType     string   `json:"job_type"`
	JobLevel    string   `json:"job_level"`
	JobLink     string   `json:"job_link"`
	Skills      []string `json:"skills"`
	FirstSeen   string   `json:"first_seen"`
}

// JobDetails is the job portion shared by the question-generation and
// feedback payloads.
type JobDetails struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// QuestionRequest is the POST /questions payload.
type QuestionRequest struct {
	Job JobDetails `json:"job"`
}

// QuestionResponse is the POST /questions response body.
type QuestionResponse struct {
	Success   bool     `json:"success"`
	JobTitle  string   `json:"job_title"`
	Questions []string `json:"questions"`
	Total     int      `json:"total"`
}

// FeedbackQA is one question/answer pair sent for feedback.
type FeedbackQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FeedbackRequest is the POST /feedback payload. A single pair asks for
// per-question feedback; all answered pairs ask for the aggregate.
type FeedbackRequest struct {
	Job       JobDetails   `json:"job"`
	Questions []FeedbackQA `json:"questions"`
}

// FeedbackResponse is the POST /feedback response body. Feedback is
// unstructured prose.
type FeedbackResponse struct {
	Success  bool   `json:"success"`
	JobTitle string `json:"job_title"`
	Feedback string `json:"feedback"`
}
