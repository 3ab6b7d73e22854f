package models

// SuggestedReference is an authoritative source the extractor proposes for
// verifying a fact: a government agency, central bank, international body,
// or an official filing.
type SuggestedReference struct {
	Organization    string  `json:"organization"`
	DataDescription string  `json:"data_description"`
	URL             *string `json:"url,omitempty"`
	URLNote         *string `json:"url_note,omitempty"`
}

// ExtractedFact is one independently checkable statement lifted from a post.
// Facts are decoupled from conclusions: the same fact may support several.
type ExtractedFact struct {
	Claim                string               `json:"claim"`
	CanonicalClaim       *string              `json:"canonical_claim,omitempty"`
	VerifiableExpression *string              `json:"verifiable_expression,omitempty"`
	IsVerifiable         bool                 `json:"is_verifiable"`
	VerificationMethod   *string              `json:"verification_method,omitempty"`
	ValidityStartNote    *string              `json:"validity_start_note,omitempty"`
	ValidityEndNote      *string              `json:"validity_end_note,omitempty"`
	SuggestedReferences  []SuggestedReference `json:"suggested_references,omitempty"`
}

// ExtractedConclusion is an author judgement. ConclusionType distinguishes
// retrospective claims ("X has happened") from predictive ones ("X will").
type ExtractedConclusion struct {
	Topic           string  `json:"topic"`
	Claim           string  `json:"claim"`
	CanonicalClaim  *string `json:"canonical_claim,omitempty"`
	ConclusionType  string  `json:"conclusion_type"` // "retrospective" or "predictive"
	TimeHorizonNote *string `json:"time_horizon_note,omitempty"`
	ValidUntilNote  *string `json:"valid_until_note,omitempty"` // predictive only
}

// ExtractedSolution is an action recommendation the author derives from
// one or more conclusions.
type ExtractedSolution struct {
	Topic                   string  `json:"topic"`
	Claim                   string  `json:"claim"`
	ActionType              *string `json:"action_type,omitempty"` // buy/sell/hold/short/diversify/hedge/reduce
	ActionTarget            *string `json:"action_target,omitempty"`
	ActionRationale         *string `json:"action_rationale,omitempty"`
	SourceConclusionIndices []int   `json:"source_conclusion_indices,omitempty"`
}

// ExtractedLogic is an argumentation edge. An "inference" links supporting
// and assumption facts to a conclusion; a "derivation" links source
// conclusions to a solution. All references are 0-based indices into the
// sibling arrays of the same ExtractionResult.
type ExtractedLogic struct {
	LogicType string `json:"logic_type"` // "inference" or "derivation"

	// inference fields
	TargetIndex           *int  `json:"target_index,omitempty"`
	SupportingFactIndices []int `json:"supporting_fact_indices,omitempty"`
	AssumptionFactIndices []int `json:"assumption_fact_indices,omitempty"`

	// derivation fields
	SolutionIndex           *int  `json:"solution_index,omitempty"`
	SourceConclusionIndices []int `json:"source_conclusion_indices,omitempty"`
}

// ExtractionResult is the complete structured output of the claim extractor
// for one post. When IsRelevantContent is false the arrays are empty and
// SkipReason says why.
type ExtractionResult struct {
	IsRelevantContent bool    `json:"is_relevant_content"`
	SkipReason        *string `json:"skip_reason,omitempty"`

	Facts       []ExtractedFact       `json:"facts,omitempty"`
	Conclusions []ExtractedConclusion `json:"conclusions,omitempty"`
	Solutions   []ExtractedSolution   `json:"solutions,omitempty"`
	Logics      []ExtractedLogic      `json:"logics,omitempty"`

	ExtractionNotes *string `json:"extraction_notes,omitempty"`
}
