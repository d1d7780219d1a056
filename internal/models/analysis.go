package models

import "time"

// AnalysisReport is the suitability assessment of a CV against a job
// description.
type AnalysisReport struct {
	ExecutiveSummary             ExecutiveSummary             `json:"executive_summary"`
	BasicQualificationCheck      BasicQualificationCheck      `json:"basic_qualification_check"`
	PositionSpecificAnalysis     PositionSpecificAnalysis     `json:"position_specific_analysis"`
	StrengthsAndWeaknesses       StrengthsAndWeaknesses       `json:"strengths_and_weaknesses"`
	Recommendation               Recommendation               `json:"recommendation"`
	CVEnhancementRecommendations CVEnhancementRecommendations `json:"cv_enhancement_recommendations"`
	OptionalAnalysis             OptionalAnalysis             `json:"optional_analysis"`
	Metadata                     Metadata                     `json:"metadata"`
}

type ExecutiveSummary struct {
	Overview        string `json:"overview"`
	KeyFinding      string `json:"key_finding"`
	Recommendation  string `json:"recommendation"`
	OverallComments string `json:"overall_comments"`
}

type BasicQualificationCheck struct {
	Education       EducationQualificationCheck `json:"education"`
	WorkExperience  WorkExperienceCheck         `json:"work_experience"`
	TechnicalSkills TechnicalSkillsCheck        `json:"technical_skills"`
}

type EducationQualificationCheck struct {
	MeetsRequirements      bool     `json:"meets_requirements"`
	CandidateEducation     string   `json:"candidate_education"`
	RequiredEducation      string   `json:"required_education"`
	Notes                  string   `json:"notes"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

type WorkExperienceCheck struct {
	MeetsDuration             bool     `json:"meets_duration"`
	YearsRequired             int      `json:"years_required"`
	YearsActual               int      `json:"years_actual"`
	Notes                     string   `json:"notes"`
	ExperienceQualityComments string   `json:"experience_quality_comments"`
	AreasForGrowth            []string `json:"areas_for_growth"`
}

type TechnicalSkillsCheck struct {
	RequiredSkills                  []string                         `json:"required_skills"`
	MatchingSkills                  []string                         `json:"matching_skills"`
	MissingSkills                   []string                         `json:"missing_skills"`
	ProficiencyLevel                string                           `json:"proficiency_level"`
	SkillDevelopmentRecommendations []SkillDevelopmentRecommendation `json:"skill_development_recommendations"`
}

type SkillDevelopmentRecommendation struct {
	Skill           string `json:"skill"`
	CurrentLevel    string `json:"current_level"`
	TargetLevel     string `json:"target_level"`
	ImprovementPath string `json:"improvement_path"`
}

type PositionSpecificAnalysis struct {
	RelevantExperience               []RelevantExperience             `json:"relevant_experience"`
	TransferableSkills               []string                         `json:"transferable_skills"`
	RelevantProjects                 []RelevantProject                `json:"relevant_projects"`
	ExperienceEnhancementSuggestions ExperienceEnhancementSuggestions `json:"experience_enhancement_suggestions"`
}

type RelevantExperience struct {
	Role                   string   `json:"role"`
	Company                string   `json:"company"`
	Duration               string   `json:"duration"`
	RelevanceScore         float64  `json:"relevance_score"`
	KeyAchievements        []string `json:"key_achievements"`
	EnhancementSuggestions []string `json:"enhancement_suggestions"`
	ReviewerComments       string   `json:"reviewer_comments"`
}

type RelevantProject struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	SkillsDemonstrated    []string `json:"skills_demonstrated"`
	ProjectImpactAnalysis string   `json:"project_impact_analysis"`
	ImprovementAreas      []string `json:"improvement_areas"`
}

type ExperienceEnhancementSuggestions struct {
	RecommendedProjects  []string `json:"recommended_projects"`
	SuggestedRoles       []string `json:"suggested_roles"`
	SkillApplicationTips []string `json:"skill_application_tips"`
}

type StrengthsAndWeaknesses struct {
	KeyStrengths             []Strength               `json:"key_strengths"`
	Gaps                     []Gap                    `json:"gaps"`
	CVImprovementSuggestions CVImprovementSuggestions `json:"cv_improvement_suggestions"`
}

type Strength struct {
	Strength            string   `json:"strength"`
	Relevance           string   `json:"relevance"`
	LeverageSuggestions []string `json:"leverage_suggestions"`
}

type Gap struct {
	Gap                  string   `json:"gap"`
	Impact               string   `json:"impact"`
	MitigationSuggestion string   `json:"mitigation_suggestion"`
	DevelopmentTimeline  string   `json:"development_timeline"`
	RecommendedResources []string `json:"recommended_resources"`
}

type CVImprovementSuggestions struct {
	ContentImprovements         []string `json:"content_improvements"`
	FormattingSuggestions       []string `json:"formatting_suggestions"`
	AchievementHighlightingTips []string `json:"achievement_highlighting_tips"`
}

type Recommendation struct {
	SuitabilityScore          float64                    `json:"suitability_score"`
	ScoreBreakdown            ScoreBreakdown             `json:"score_breakdown"`
	InterviewQuestions        []InterviewQuestion        `json:"interview_questions"`
	UpskillingRecommendations []UpskillingRecommendation `json:"upskilling_recommendations"`
	CareerDevelopmentPath     CareerDevelopmentPath      `json:"career_development_path"`
}

type ScoreBreakdown struct {
	TechnicalFit     float64 `json:"technical_fit"`
	ExperienceFit    float64 `json:"experience_fit"`
	EducationFit     float64 `json:"education_fit"`
	OverallPotential float64 `json:"overall_potential"`
}

type InterviewQuestion struct {
	Question               string   `json:"question"`
	Rationale              string   `json:"rationale"`
	ExpectedResponsePoints []string `json:"expected_response_points"`
}

type UpskillingRecommendation struct {
	Skill              string   `json:"skill"`
	SuggestedResources []string `json:"suggested_resources"`
	Timeline           string   `json:"timeline"`
	PriorityLevel      string   `json:"priority_level"`
}

type CareerDevelopmentPath struct {
	ShortTermGoals      []string `json:"short_term_goals"`
	LongTermPotential   string   `json:"long_term_potential"`
	GrowthOpportunities []string `json:"growth_opportunities"`
}

type CVEnhancementRecommendations struct {
	StructureImprovements []StructureImprovement `json:"structure_improvements"`
	ContentEnhancements   []ContentEnhancement   `json:"content_enhancements"`
	ProfessionalBranding  ProfessionalBranding   `json:"professional_branding"`
}

type StructureImprovement struct {
	Section          string `json:"section"`
	CurrentState     string `json:"current_state"`
	SuggestedChanges string `json:"suggested_changes"`
	ExpectedImpact   string `json:"expected_impact"`
}

type ContentEnhancement struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example"`
}

type ProfessionalBranding struct {
	LinkedInProfileSuggestions           []string `json:"linkedin_profile_suggestions"`
	PortfolioRecommendations             []string `json:"portfolio_recommendations"`
	ProfessionalCertificationSuggestions []string `json:"professional_certification_suggestions"`
}

type OptionalAnalysis struct {
	CulturalFit CulturalFit `json:"cultural_fit"`
	SalaryRange SalaryRange `json:"salary_range"`
	RedFlags    RedFlags    `json:"red_flags"`
}

type CulturalFit struct {
	AlignmentScore        float64  `json:"alignment_score"`
	MatchingValues        []string `json:"matching_values"`
	PotentialConcerns     []string `json:"potential_concerns"`
	AdaptationSuggestions []string `json:"adaptation_suggestions"`
}

type SalaryRange struct {
	Min               float64  `json:"min"`
	Max               float64  `json:"max"`
	Currency          string   `json:"currency"`
	MarketDataSource  string   `json:"market_data_source"`
	NegotiationPoints []string `json:"negotiation_points"`
}

type RedFlags struct {
	EmploymentGaps       []EmploymentGap `json:"employment_gaps"`
	Inconsistencies      []string        `json:"inconsistencies"`
	MitigationStrategies []string        `json:"mitigation_strategies"`
}

type EmploymentGap struct {
	Period                 string   `json:"period"`
	Duration               string   `json:"duration"`
	ConcernLevel           string   `json:"concern_level"`
	ExplanationSuggestions []string `json:"explanation_suggestions"`
}

type Metadata struct {
	AnalysisDate     time.Time `json:"analysis_date"`
	JobTitle         string    `json:"job_title"`
	CompanyName      string    `json:"company_name"`
	AnalyzerComments string    `json:"analyzer_comments"`
}
