package refiner

import "github.com/rishika0704/promptforge/internal/classifier"

// manualTemplate holds the two variants of a refinement sentence. The first
// %s slot is the comma-joined keyword clause; the withRelated variant adds a
// second slot for the comma-joined related terms.
type manualTemplate struct {
	base        string
	withRelated string
}

// templatesByLabel selects the refinement sentence for each classification.
// LabelUnrecognized carries a generic fallback so selection is total.
var templatesByLabel = map[classifier.Label]manualTemplate{
	classifier.LabelDescription: {
		base:        "Can you describe in detail %s?",
		withRelated: "Can you describe in detail %s and their related terms: %s?",
	},
	classifier.LabelExplanation: {
		base:        "Can you explain how %s work?",
		withRelated: "Can you explain how %s work and their relationships to %s?",
	},
	classifier.LabelDefinition: {
		base:        "Please provide clear definitions of %s.",
		withRelated: "Please provide clear definitions of %s, including %s.",
	},
	classifier.LabelComparison: {
		base:        "Can you compare %s?",
		withRelated: "Can you compare %s with %s?",
	},
	classifier.LabelUnrecognized: {
		base:        "Can you elaborate on %s?",
		withRelated: "Can you elaborate on %s, touching on %s?",
	},
}

// geminiPromptTemplate seeds the external refinement. Slots: the original
// prompt and the comma-joined keyword list.
const geminiPromptTemplate = `You are a prompt engineer; your task is to refine and enhance the initial prompt so that the output of the refined prompt should be better while staying true to the intent of the initial prompt. Use the important keywords to refine the initial prompt.

initial_prompt = %s
extracted_keywords = %s
refined_prompt =`
