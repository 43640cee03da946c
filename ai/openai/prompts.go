package openai

import "github.com/tmc/langchaingo/prompts"

// mapPrompt condenses one transcript segment (map stage).
var mapPrompt = prompts.NewPromptTemplate(
	"Write a concise summary of the following:\n\n{{.segment}}",
	[]string{"segment"},
)

// reducePrompt distills the per-segment summaries into one (reduce stage).
var reducePrompt = prompts.NewPromptTemplate(
	`The following is a set of summaries:
{{.summaries}}
Take these and distill it into a final, consolidated summary
of the main themes.`,
	[]string{"summaries"},
)

// answerPrompt constrains the answer to the retrieved context.
var answerPrompt = prompts.NewPromptTemplate(
	`<rules>
Answer to the provided question with the given context.
Do not go beyond the context to answer the questions. Do not assume.
Answer casual greetings and conversation QUESTION.
  For example,
    Human: Hey!
    AI: Hello! How can I help?
</rules>
Always abide by the rules mentioned within the <rules></rules> above.
The context is provided between three backticks.
The question is provided between three asterisks.
` + "```{{.context}}```" + `

***{{.question}}***`,
	[]string{"context", "question"},
)
