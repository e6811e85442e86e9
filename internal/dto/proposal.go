package dto

// GenerateProposalRequest carries client project parameters for proposal
// generation.
type GenerateProposalRequest struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	UserEmail   string `json:"userEmail"`
}

// GenerateProposalResponse returns the generated (or fallback) proposal text.
type GenerateProposalResponse struct {
	Proposal string `json:"proposal"`
}
