package contact

// Interest is the area of work a visitor is asking about.
type Interest string

const (
	InterestAIAgents       Interest = "ai-agents"
	InterestEnterpriseAI   Interest = "enterprise-ai"
	InterestResearch       Interest = "research"
	InterestCustomSoftware Interest = "custom-software"
	InterestComputerVision Interest = "computer-vision"
	InterestBlockchain     Interest = "blockchain"
	InterestOther          Interest = "other"
)

var interestLabels = map[Interest]string{
	InterestAIAgents:       "AI Agents & Automation",
	InterestEnterpriseAI:   "Enterprise AI Solutions",
	InterestResearch:       "Research & Knowledge Tools",
	InterestCustomSoftware: "Custom Software",
	InterestComputerVision: "Computer Vision Systems",
	InterestBlockchain:     "Blockchain Integration",
	InterestOther:          "Other",
}

// Interests returns every selectable interest in display order.
func Interests() []Interest {
	return []Interest{
		InterestAIAgents,
		InterestEnterpriseAI,
		InterestResearch,
		InterestCustomSoftware,
		InterestComputerVision,
		InterestBlockchain,
		InterestOther,
	}
}

// Valid reports whether i is one of the listed interests.
func (i Interest) Valid() bool {
	_, ok := interestLabels[i]
	return ok
}

// Label returns the human readable name, or the raw value if unknown.
func (i Interest) Label() string {
	if l, ok := interestLabels[i]; ok {
		return l
	}
	return string(i)
}
