package agent

import "fmt"

// InitPrompt builds the system prompt an agent is initialized with. Unknown
// kinds get a generic prompt instead of an error.
func InitPrompt(kind Kind, params map[string]any) string {
	tc := TaskContext{params: params}
	base := fmt.Sprintf("You are a specialized %s agent. ", kind)

	switch kind {
	case KindResearch:
		return base + fmt.Sprintf("Your task is to research about %s and provide comprehensive information.",
			tc.Param("topic", "the given topic"))
	case KindWriting:
		return base + fmt.Sprintf("Your task is to write content in a %s style based on the provided information.",
			tc.Param("style", "general"))
	case KindAnalysis:
		return base + "Your task is to analyze the provided data and extract meaningful insights."
	default:
		return base + "Your specific tasks will be provided in the execution context."
	}
}
