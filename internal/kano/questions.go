package kano

// Question is a paired Kano questionnaire item.
type Question struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Functional    string `json:"functional"`
	Dysfunctional string `json:"dysfunctional"`
}

// AnswerOptions maps the ordinal scale values to their labels.
var AnswerOptions = map[int]string{
	1: "I like it that way",
	2: "It must be that way",
	3: "I am neutral",
	4: "I can live with it that way",
	5: "I dislike it that way",
}

// DefaultQuestions is the built-in AI agent feature questionnaire.
var DefaultQuestions = []Question{
	{
		ID:            "response_accuracy",
		Title:         "Response Accuracy",
		Functional:    "How do you feel if the AI Agent always accurately understands your questions and provides correct answers?",
		Dysfunctional: "How do you feel if the AI Agent frequently misunderstands your questions or gives incorrect answers?",
	},
	{
		ID:            "response_speed",
		Title:         "Response Speed",
		Functional:    "How do you feel if the AI Agent can respond to your questions within 1 second?",
		Dysfunctional: "How do you feel if the AI Agent takes more than 10 seconds to respond to your questions?",
	},
	{
		ID:            "natural_conversation",
		Title:         "Natural Conversation",
		Functional:    "How do you feel if the AI Agent can engage in natural, flowing conversations like a human?",
		Dysfunctional: "How do you feel if the AI Agent's responses are stiff and unnatural?",
	},
	{
		ID:            "context_memory",
		Title:         "Context Memory",
		Functional:    "How do you feel if the AI Agent can remember the entire conversation history and maintain contextual coherence?",
		Dysfunctional: "How do you feel if the AI Agent cannot remember previous conversation content and requires re-explanation each time?",
	},
	{
		ID:            "personalization",
		Title:         "Personalization Service",
		Functional:    "How do you feel if the AI Agent can provide personalized services based on your preferences and history?",
		Dysfunctional: "How do you feel if the AI Agent cannot provide any personalized services and gives the same responses to everyone?",
	},
	{
		ID:            "multi_modal",
		Title:         "Multi-modal Interaction",
		Functional:    "How do you feel if the AI Agent can handle multiple input types like text, images, and voice?",
		Dysfunctional: "How do you feel if the AI Agent can only handle pure text input?",
	},
	{
		ID:            "error_handling",
		Title:         "Error Handling",
		Functional:    "How do you feel if the AI Agent can proactively apologize and provide solutions when it makes mistakes?",
		Dysfunctional: "How do you feel if the AI Agent does not acknowledge mistakes and continues to insist on incorrect answers?",
	},
	{
		ID:            "learning_ability",
		Title:         "Learning Ability",
		Functional:    "How do you feel if the AI Agent can learn from interactions with you and gradually improve service quality?",
		Dysfunctional: "How do you feel if the AI Agent cannot learn or improve at all, repeating the same mistakes?",
	},
	{
		ID:            "emotional_intelligence",
		Title:         "Emotional Intelligence",
		Functional:    "How do you feel if the AI Agent can understand your emotions and provide appropriate emotional responses?",
		Dysfunctional: "How do you feel if the AI Agent cannot understand emotions at all and gives cold responses to emotional questions?",
	},
	{
		ID:            "privacy_protection",
		Title:         "Privacy Protection",
		Functional:    "How do you feel if the AI Agent can strictly protect your privacy information and transparently explain data usage?",
		Dysfunctional: "How do you feel if the AI Agent might leak your privacy information and does not explain how data is used?",
	},
}
