package server

import (
	"net/http"

	"github.com/jonathan/interview-coach/internal/interview"
)

// IndustryResponse is the wire shape of one industry profile.
type IndustryResponse struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	FocusAreas      []string `json:"focus_areas"`
	SampleQuestions []string `json:"sample_questions"`
	Companies       []string `json:"companies"`
	DifficultyLevel []string `json:"difficulty_levels"`
	QuestionTypes   []string `json:"question_types"`
}

// CompanyStyleResponse is the wire shape of a curated company style.
type CompanyStyleResponse struct {
	Company          string   `json:"company"`
	Values           []string `json:"values"`
	InterviewFocus   []string `json:"interview_focus"`
	TypicalQuestions []string `json:"typical_questions"`
	CulturalNotes    string   `json:"cultural_notes"`
}

func industryResponse(profile interview.IndustryProfile) IndustryResponse {
	return IndustryResponse{
		ID:              profile.ID,
		Description:     profile.Description,
		FocusAreas:      profile.FocusAreas,
		SampleQuestions: profile.SampleQuestions,
		Companies:       profile.Companies,
		DifficultyLevel: interview.DifficultyLevels(),
		QuestionTypes:   interview.QuestionTypeIDs(),
	}
}

// handleListIndustries returns every supported industry profile.
func (s *Server) handleListIndustries(w http.ResponseWriter, _ *http.Request) {
	ids := interview.IndustryIDs()
	industries := make([]IndustryResponse, 0, len(ids))
	for _, id := range ids {
		if profile, ok := interview.Industry(id); ok {
			industries = append(industries, industryResponse(profile))
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"industries": industries})
}

// handleGetIndustry returns a single industry profile.
func (s *Server) handleGetIndustry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := interview.Industry(id)
	if !ok {
		s.domainError(w, &ErrNotFound{Resource: "industry", Key: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, industryResponse(profile))
}

// handleGetCompanyStyle returns the curated interview style for a company.
func (s *Server) handleGetCompanyStyle(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	style, ok := interview.StyleForCompany(name)
	if !ok {
		s.domainError(w, &ErrNotFound{Resource: "company style", Key: name})
		return
	}
	s.jsonResponse(w, http.StatusOK, CompanyStyleResponse{
		Company:          name,
		Values:           style.Values,
		InterviewFocus:   style.InterviewFocus,
		TypicalQuestions: style.TypicalQuestions,
		CulturalNotes:    style.CulturalNotes,
	})
}
