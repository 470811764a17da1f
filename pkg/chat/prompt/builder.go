// Package prompt assembles the message array sent to the model: the system
// prompt with its context blocks, the recent history window, and the new
// user message.
package prompt

import (
	"techstore-ai-be/internal/constant"
	"techstore-ai-be/pkg/llm"
	"techstore-ai-be/pkg/store"
)

// Input carries everything the builder folds into the final message array.
// DatabaseContext and Summary are skipped when empty; KnowledgeMode adds the
// general-knowledge instruction.
type Input struct {
	UserMessage     string
	Recent          []store.Turn
	DatabaseContext string
	KnowledgeMode   bool
	Summary         string
}

// Build produces the ordered messages: one system message with appended
// context blocks, then the recent turns, then the user message.
func Build(in Input) []llm.Message {
	system := constant.SystemRole
	if in.DatabaseContext != "" {
		system += constant.DatabaseContextHeader + in.DatabaseContext + constant.DatabaseContextFooter
	}
	if in.KnowledgeMode {
		system += constant.KnowledgeInstruction
	}
	if in.Summary != "" {
		system += constant.SummaryContextHeader + in.Summary
	}

	messages := make([]llm.Message, 0, len(in.Recent)+2)
	messages = append(messages, llm.Message{Role: store.RoleSystem, Content: system})
	for _, turn := range in.Recent {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: store.RoleUser, Content: in.UserMessage})
	return messages
}
