package templates

// builtinTemplates returns the template set shipped with devbot. Usage
// counts start at zero; stored counts are merged over these on load.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "explain-concept",
			Title:       "Explain this concept",
			Description: "Ask for a detailed explanation of a programming concept",
			Template: "Explain the concept of {concept} in {language}. Include:\n" +
				"- A clear definition\n- A practical example\n- Common use cases\n- Best practices",
			Category:  "explanation",
			Variables: []string{"concept", "language"},
		},
		{
			ID:          "analyze-performance",
			Title:       "Analyze this code's performance",
			Description: "Detailed performance and optimization analysis",
			Template: "Analyze the performance of this {language} code:\n\n{code}\n\nProvide:\n" +
				"- Optimization opportunities\n- Algorithmic complexity\n- Improvement suggestions\n- An optimized version",
			Category:  "analysis",
			Variables: []string{"language", "code"},
		},
		{
			ID:          "convert-language",
			Title:       "Convert from X to Y",
			Description: "Convert code from one language to another",
			Template: "Convert this code from {fromLanguage} to {toLanguage}:\n\n{code}\n\nPreserve:\n" +
				"- The same behavior\n- Target-language best practices\n- Explanatory comments\n- Error handling",
			Category:  "conversion",
			Variables: []string{"fromLanguage", "toLanguage", "code"},
		},
		{
			ID:          "create-example",
			Title:       "Create a practical example",
			Description: "Generate practical, working examples",
			Template: "Create a practical example of {topic} in {language}:\n\n" +
				"- Complete, working code\n- Explanatory comments\n- A usage example\n- Possible extensions",
			Category:  "example",
			Variables: []string{"topic", "language"},
		},
		{
			ID:          "code-review",
			Title:       "Code review",
			Description: "Full review with a focus on quality",
			Template: "Do a detailed review of this {language} code:\n\n{code}\n\nAssess:\n" +
				"- Readability and organization\n- Best practices\n- Possible bugs\n- Improvement suggestions\n- Design patterns",
			Category:  "analysis",
			Variables: []string{"language", "code"},
		},
		{
			ID:          "debug-help",
			Title:       "Debugging help",
			Description: "Identify and fix problems in code",
			Template: "Help me debug this problem in {language}:\n\n{code}\n\nError/problem: {error}\n\nI need:\n" +
				"- The root cause\n- A step-by-step fix\n- The corrected code\n- How to avoid it in the future",
			Category:  "analysis",
			Variables: []string{"language", "code", "error"},
		},
	}
}
